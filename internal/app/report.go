package app

import "tradePulseBot/internal/domain"

// Report flattens the analysis into a plain-data structure suitable for
// downstream rendering (messaging, templating, JSON). No domain types leak
// out; everything is strings, numbers, bools, maps, and slices.
func (a *Analysis) Report() map[string]interface{} {
	report := map[string]interface{}{
		"symbol": a.Symbol,
		"style": map[string]interface{}{
			"name":     string(a.Style.Style),
			"htf":      a.Style.HTFInterval,
			"ltf":      a.Style.LTFInterval,
			"holdTime": a.Style.HoldTimeLabel,
			"minRR":    a.Style.MinRR,
		},
		"quote": map[string]interface{}{
			"last":          a.Quote.LastPrice(),
			"bid":           a.Quote.Bid,
			"ask":           a.Quote.Ask,
			"change":        a.Quote.Change,
			"changePercent": a.Quote.ChangePercent,
			"high":          a.Quote.High,
			"low":           a.Quote.Low,
			"volume":        a.Quote.Volume,
		},
		"decision": map[string]interface{}{
			"confidence":     a.Decision.Confidence,
			"verdict":        string(a.Decision.Verdict),
			"tradeable":      a.Decision.Tradeable,
			"reasons":        a.Decision.Reasons,
			"alignmentScore": a.Decision.AlignmentScore,
			"vwapExtended":   a.Decision.VWAPExtended,
		},
		"htf": snapshotReport(a.HTF),
	}

	if a.LTF != nil {
		report["ltf"] = snapshotReport(a.LTF)
	}
	if a.Direction.IsValid() {
		report["direction"] = string(a.Direction)
	}
	if a.Targets != nil {
		t := a.Targets
		report["targets"] = map[string]interface{}{
			"entry":      t.Entry,
			"tp1":        t.TP1,
			"tp2":        t.TP2,
			"sl":         t.SL,
			"tp1Percent": t.TP1Percent,
			"tp2Percent": t.TP2Percent,
			"slPercent":  t.SLPercent,
			"rr1":        t.RR1,
			"rr2":        t.RR2,
			"holdTime":   t.HoldTime,
		}
	}
	return report
}

func snapshotReport(snap *domain.IndicatorSnapshot) map[string]interface{} {
	return map[string]interface{}{
		"interval": snap.Interval,
		"price":    snap.Price,
		"vwap":     snap.VWAP,
		"rsi":      snap.RSI,
		"stochRSI": snap.StochRSI,
		"atr":      snap.ATR,
		"mfi":      snap.MFI,
		"strength": snap.Strength,
		"macd": map[string]interface{}{
			"value":     snap.MACD.Value,
			"signal":    snap.MACD.Signal,
			"histogram": snap.MACD.Histogram,
		},
		"bollinger": map[string]interface{}{
			"upper":    snap.Bollinger.Upper,
			"middle":   snap.Bollinger.Middle,
			"lower":    snap.Bollinger.Lower,
			"width":    snap.Bollinger.Width,
			"position": string(snap.Bollinger.Position),
		},
		"trend": map[string]interface{}{
			"direction": string(snap.Trend.Direction),
			"strength":  string(snap.Trend.Strength),
			"emaStack":  string(snap.Trend.EMAStack),
			"ema20":     snap.Trend.EMA20,
			"ema50":     snap.Trend.EMA50,
		},
		"momentum": map[string]interface{}{
			"direction":    string(snap.Momentum.Direction),
			"strength":     snap.Momentum.Strength,
			"acceleration": string(snap.Momentum.Acceleration),
			"roc":          snap.Momentum.ROC,
		},
		"volume": map[string]interface{}{
			"profile":  string(snap.VolumeAnalysis.Profile),
			"trend":    string(snap.VolumeAnalysis.Trend),
			"strength": snap.VolumeAnalysis.Strength,
			"ratio":    snap.VolumeAnalysis.Ratio,
		},
		"support":    levelReports(snap.SupportLevels),
		"resistance": levelReports(snap.ResistanceLevels),
	}
}

func levelReports(levels []domain.PriceLevel) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(levels))
	for _, l := range levels {
		out = append(out, map[string]interface{}{
			"price":    l.Price,
			"strength": string(l.Strength),
			"type":     string(l.Type),
		})
	}
	return out
}
