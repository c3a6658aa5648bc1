package xfin

import "strings"

// nameToTicker maps normalized company names to Yahoo Finance tickers.
// The slice carries the authoritative order for partial matching; the map
// is the fast path for exact hits. Both hold the same entries.
var nameToTicker = []struct {
	name   string
	ticker string
}{
	{"BANK OF BARODA", "BANKBARODA.NS"},
	{"BANK OF MAHARASHTRA", "MAHABANK.NS"},
	{"CENTRAL BANK OF INDIA", "CENTRALBK.NS"},
	{"CENTRAL BANK", "CENTRALBK.NS"},
	{"INDIAN BANK", "INDIANB.NS"},
	{"PUNJAB NATIONAL BANK", "PNB.NS"},
	{"STATE BANK OF INDIA", "SBIN.NS"},
	{"UNION BANK OF INDIA", "UNIONBANK.NS"},
	{"CANARA BANK", "CANBK.NS"},

	{"POWER GRID CORPORATION", "POWERGRID.NS"},
	{"POWER GRID", "POWERGRID.NS"},
	{"POWER FIN CORP", "PFC.NS"},
	{"POWER FINANCE CORPORATION", "PFC.NS"},
	{"NTPC", "NTPC.NS"},
	{"COAL INDIA", "COALINDIA.NS"},
	{"OIL AND NATURAL GAS CORP", "ONGC.NS"},
	{"OIL AND NATURAL GAS CORPORATION", "ONGC.NS"},
	{"OIL INDIA", "OIL.NS"},
	{"INDIAN OIL CORP", "IOC.NS"},
	{"INDIAN OIL CORPORATION", "IOC.NS"},
	{"BHARAT PETROLEUM", "BPCL.NS"},
	{"HINDUSTAN PETROLEUM CORP", "HINDPETRO.NS"},
	{"HINDUSTAN PETROLEUM", "HINDPETRO.NS"},
	{"GAIL (INDIA)", "GAIL.NS"},
	{"GAIL", "GAIL.NS"},
	{"NLC INDIA", "NLCINDIA.NS"},

	{"BHARTI AIRTEL", "BHARTIARTL.NS"},
	{"RELIANCE JIO", "RELIANCE.NS"},
	{"JIO FIN SERVICES", "JIOFIN.NS"},
	{"JIO", "JIOFIN.NS"},

	{"HINDUSTAN AERONAUTICS", "HAL.NS"},
	{"BHARAT ELECTRONICS", "BEL.NS"},
	{"MAZAGON DOCK SHIPBUILDERS", "MAZDOCK.NS"},
	{"BHARAT DYNAMICS", "BDL.NS"},

	{"TATA CONSULTANCY SERVICES", "TCS.NS"},
	{"INFOSYS", "INFY.NS"},
	{"WIPRO", "WIPRO.NS"},
	{"HCL TECHNOLOGIES", "HCLTECH.NS"},
	{"TECH MAHINDRA", "TECHM.NS"},

	{"TATA MOTORS", "TATAMOTORS.NS"},
	{"TATA MOTORS PASS VEH", "TATAMOTORS.NS"},
	{"MARUTI SUZUKI", "MARUTI.NS"},
	{"MAHINDRA & MAHINDRA", "M&M.NS"},

	{"NMDC", "NMDC.NS"},
	{"STEEL AUTHORITY OF INDIA", "SAIL.NS"},
	{"TATA STEEL", "TATASTEEL.NS"},
	{"HINDALCO", "HINDALCO.NS"},

	{"IRCON INTERNATIONAL", "IRCON.NS"},
	{"RITES", "RITES.NS"},
	{"REC", "RECLTD.NS"},
	{"CENTRAL DEPO SER (I)", "CDSL.NS"},
	{"CENTRAL DEPOSITORY SERVICES", "CDSL.NS"},

	{"SUZLON ENERGY", "SUZLON.NS"},
	{"SUZLON", "SUZLON.NS"},

	{"TATA CAPITAL", "TATACAPITAL.NS"},

	{"RELIANCE INDUSTRIES", "RELIANCE.NS"},
	{"RELIANCE", "RELIANCE.NS"},
	{"ITC", "ITC.NS"},
	{"HDFC BANK", "HDFCBANK.NS"},
	{"ICICI BANK", "ICICIBANK.NS"},
	{"AXIS BANK", "AXISBANK.NS"},

	{"GRAPHITE INDIA", "GRAPHITE.NS"},

	{"MADHAV COPPER", "MADHAV.NS"},
	{"MADHAV INFRA PROJECTS", "MADHAV.NS"},

	{"CHOICE INTERNATIONAL", "CHOICEIN.NS"},
	{"CHOICE", "CHOICEIN.NS"},

	{"TATAAML-TATSILV", "TATAAMC.NS"},
}

var nameTickerIndex = func() map[string]string {
	m := make(map[string]string, len(nameToTicker))
	for _, e := range nameToTicker {
		m[e.name] = e.ticker
	}
	return m
}()

// isinToTicker maps ISINs to Yahoo Finance tickers for the securities the
// name table covers. ISIN hits are preferred over name matching.
var isinToTicker = map[string]string{
	"INE028A01039": "BANKBARODA.NS",
	"INE483A01010": "CENTRALBK.NS",
	"INE562A01011": "INDIANB.NS",
	"INE160A01022": "PNB.NS",
	"INE062A01020": "SBIN.NS",
	"INE692A01016": "UNIONBANK.NS",

	"INE752E01010": "POWERGRID.NS",
	"INE733E01010": "NTPC.NS",
	"INE522F01014": "COALINDIA.NS",
	"INE213A01029": "ONGC.NS",
	"INE274J01014": "OIL.NS",
	"INE242A01010": "IOC.NS",
	"INE171A01029": "BPCL.NS",
	"INE094A01015": "HINDPETRO.NS",
	"INE129A01019": "GAIL.NS",
	"INE589A01014": "NLCINDIA.NS",

	"INE397D01024": "BHARTIARTL.NS",
	"INE002A01018": "RELIANCE.NS",

	"INE467B01029": "TCS.NS",
	"INE009A01021": "INFY.NS",
	"INE075A01022": "WIPRO.NS",
	"INE860A01027": "HCLTECH.NS",

	"INE040A01034": "HDFCBANK.NS",
	"INE090A01021": "ICICIBANK.NS",
	"INE238A01034": "AXISBANK.NS",

	"INE154A01025": "ITC.NS",
	"INE101A01026": "MARUTI.NS",
	"INE155A01022": "TATAMOTORS.NS",
	"INE101D01020": "NMDC.NS",
	"INE202A01019": "RECLTD.NS",
	"INE134E01011": "PFC.NS",
	"INE139A01034": "SUZLON.NS",
	"INE448A01013": "RITES.NS",
	"INE255A01020": "GRAPHITE.NS",
}

// tickerSuffixes are trailing legal-form tokens stripped from a name before
// the table lookup. Each suffix is tried once in order, so compound tails
// like "SERVICES LTD" shed both tokens.
var tickerSuffixes = []string{
	" LIMITED", " LTD.", " LTD", " CORP.", " CORP", " CORPORATION",
	" INC.", " INC", " PVT.", " PVT", " PASS VEH LTD", " (INDIA)",
	" (I) LTD", " SERVICES", " SER (I) LTD",
}

const unknownTicker = "UNKNOWN.NS"

// TickerFromName resolves a company name to a Yahoo Finance ticker, or ""
// when the name matches nothing. The name is uppercased, a trailing legal
// suffix is stripped, then an exact table lookup runs before a
// bidirectional substring scan over the table in declaration order.
func TickerFromName(stockName string) string {
	if stockName == "" {
		return ""
	}
	clean := strings.ToUpper(strings.TrimSpace(stockName))
	for _, suffix := range tickerSuffixes {
		if strings.HasSuffix(clean, suffix) {
			clean = strings.TrimSpace(clean[:len(clean)-len(suffix)])
		}
	}
	if t, ok := nameTickerIndex[clean]; ok {
		return t
	}
	for _, e := range nameToTicker {
		if strings.Contains(clean, e.name) || strings.Contains(e.name, clean) {
			return e.ticker
		}
	}
	return ""
}

// TickerFromISIN resolves an ISIN to a ticker, or "" when unmapped.
// Strings that fail the ISIN check digit are never used as lookup keys.
func TickerFromISIN(isin string) string {
	code := strings.ToUpper(strings.TrimSpace(isin))
	if ValidateISIN(code) != nil {
		return ""
	}
	return isinToTicker[code]
}

// ResolveTicker produces the best Yahoo Finance ticker from whatever
// identity fields a holding carries.
//
// Priority: a symbol already carrying an exchange suffix, then the ISIN
// table, then the name table, then symbol+".NS", then the first word of
// the name +".NS". With no identity at all it returns "UNKNOWN.NS".
func ResolveTicker(stockName, isin, symbol string) string {
	if symbol != "" && (strings.Contains(symbol, ".NS") || strings.Contains(symbol, ".BO")) {
		return symbol
	}
	if t := TickerFromISIN(isin); t != "" {
		return t
	}
	if t := TickerFromName(stockName); t != "" {
		return t
	}
	if symbol != "" {
		return strings.ToUpper(symbol) + ".NS"
	}
	if fields := strings.Fields(stockName); len(fields) > 0 {
		return strings.ToUpper(fields[0]) + ".NS"
	}
	return unknownTicker
}
