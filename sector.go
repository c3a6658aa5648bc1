package xfin

import "strings"

// Sector is an industry sector from the fixed catalog. SectorOther is the
// universal fallback; classification never returns anything else outside
// the catalog.
type Sector string

const (
	SectorBanking       Sector = "Banking"
	SectorFinancial     Sector = "Financial Services"
	SectorIT            Sector = "IT Services"
	SectorPharma        Sector = "Pharmaceuticals"
	SectorOilGas        Sector = "Oil & Gas"
	SectorPower         Sector = "Power"
	SectorAuto          Sector = "Automobiles"
	SectorFMCG          Sector = "FMCG"
	SectorTelecom       Sector = "Telecom"
	SectorMetals        Sector = "Metals & Mining"
	SectorInfra         Sector = "Infrastructure"
	SectorCement        Sector = "Cement"
	SectorRealEstate    Sector = "Real Estate"
	SectorMedia         Sector = "Media & Entertainment"
	SectorOther         Sector = "Other"
)

// sectorOverrides are company-specific exact matches checked before any
// keyword scoring, in declaration order. They exist to pin companies whose
// names would otherwise mislead the keyword scorer (Tata Capital is a
// lender, not a carmaker).
var sectorOverrides = []struct {
	key    string
	sector Sector
}{
	{"TATA MOTORS", SectorAuto},
	{"TATAMOTORS", SectorAuto},
	{"TATA MOTOR", SectorAuto},
	{"TATA MOTORS PASS VEH", SectorAuto},
	{"TATA MOTORS LTD", SectorAuto},
	{"TATA CAPITAL", SectorFinancial},
	{"TATA CAPITAL LIMITED", SectorFinancial},
	{"TATAAML-TATSILV", SectorFinancial},
	{"TATA AML", SectorFinancial},
	{"TATA ASSET", SectorFinancial},
	{"REC LIMITED", SectorPower},
	{"REC LTD", SectorPower},
	{"POWER FIN CORP", SectorPower},
	{"PFC", SectorPower},
	{"SUZLON ENERGY", SectorPower},
	{"SUZLON", SectorPower},
	{"GRAPHITE INDIA", SectorMetals},
	{"GRAPHITE", SectorMetals},
	{"RITES LIMITED", SectorInfra},
	{"RITES LTD", SectorInfra},
	{"GAIL", SectorOilGas},
	{"GAIL INDIA", SectorOilGas},
	{"COAL INDIA", SectorPower},
	{"COAL INDIA LTD", SectorPower},
	{"VEDANTA", SectorMetals},
	{"VEDANTA LIMITED", SectorMetals},
	{"NMDC", SectorMetals},
}

// sectorPatterns is the weighted keyword table. The slice order is the
// authoritative tie-break: when two sectors reach the same score, the one
// declared earlier here wins.
var sectorPatterns = []struct {
	sector Sector
	high   []string // specific company or product names, 10 points each
	medium []string // sector-specific terms, 3 points each
	low    []string // generic terms, 1 point each
}{
	{
		sector: SectorBanking,
		high:   []string{"BANK OF", "STATE BANK", "SBI ", "HDFC BANK", "ICICI BANK", "AXIS BANK", "KOTAK BANK"},
		medium: []string{"BANK", "BANKS", "BANKING"},
	},
	{
		sector: SectorFinancial,
		high:   []string{"BAJAJ FIN", "HOUSING FINANCE", "BAJAJ HOUSING", "DEPOSITORY", "CDSL", "NSDL", "MUTUAL FUND", "ASSET MANAGEMENT"},
		medium: []string{"FINANCIAL", "FINANCE", "CREDIT", "INSURANCE", "SECURITIES", "INVESTMENT"},
		low:    []string{"CAPITAL", "FUND"},
	},
	{
		sector: SectorIT,
		high:   []string{"TCS", "TATA CONSULTANCY", "INFOSYS", "INFY", "WIPRO", "TECH MAHINDRA", "HCL TECH"},
		medium: []string{"SOFTWARE", "INFOTECH", "TECHNOLOGY", "IT SERVICES", "DIGITAL", "CYBER"},
		low:    []string{"TECH", "DATA", "SYSTEM"},
	},
	{
		sector: SectorPharma,
		high:   []string{"CIPLA", "LUPIN", "DR REDDY", "SUN PHARMA", "BIOCON", "PHARMACEUTICAL"},
		medium: []string{"PHARMA", "HEALTHCARE", "MEDICAL", "MEDICINE", "DRUG"},
		low:    []string{"HEALTH", "BIO", "LIFE"},
	},
	{
		sector: SectorOilGas,
		high:   []string{"INDIAN OIL", "BPCL", "HPCL", "HINDUSTAN PETROLEUM", "BHARAT PETROLEUM", "ONGC", "OIL AND NATURAL GAS"},
		medium: []string{"PETROLEUM", "REFINERY", "OIL CORP"},
		low:    []string{"OIL", "GAS"},
	},
	{
		sector: SectorPower,
		high:   []string{"NTPC", "POWERGRID", "TATA POWER", "ADANI POWER", "JSW ENERGY", "TORRENT POWER", "NLC INDIA", "NHPC", "REC LIMITED", "POWER FIN", "SUZLON"},
		medium: []string{"POWER CORP", "ELECTRICITY", "ELECTRIC UTILITIES", "RENEWABLE ENERGY", "SOLAR ENERGY", "WIND ENERGY"},
		low:    []string{"POWER", "ELECTRIC", "ENERGY", "RENEWABLE"},
	},
	{
		sector: SectorAuto,
		high:   []string{"TATA MOTORS", "MARUTI", "MAHINDRA", "BAJAJ AUTO", "HERO MOTO", "TVS MOTOR", "EICHER MOTORS", "ASHOK LEYLAND"},
		medium: []string{"AUTOMOBILE", "AUTOMOTIVE", "VEHICLES"},
		low:    []string{"AUTO", "MOTOR", "CAR"},
	},
	{
		sector: SectorFMCG,
		high:   []string{"ITC LTD", "HUL", "HINDUSTAN UNILEVER", "BRITANNIA", "NESTLE", "DABUR", "MARICO", "GODREJ CONSUMER"},
		medium: []string{"CONSUMER GOODS", "CONSUMER PRODUCTS", "FOODS", "BEVERAGE"},
		low:    []string{"CONSUMER", "FOOD", "PRODUCTS"},
	},
	{
		sector: SectorTelecom,
		high:   []string{"BHARTI AIRTEL", "VODAFONE", "IDEA", "JIO", "RELIANCE JIO"},
		medium: []string{"TELECOM", "TELECOMMUNICATION", "COMMUNICATION SERVICES"},
		low:    []string{"MOBILE", "NETWORK"},
	},
	{
		sector: SectorMetals,
		high:   []string{"TATA STEEL", "JSW STEEL", "HINDALCO", "VEDANTA", "NALCO", "NMDC", "SAIL", "JINDAL STEEL", "GRAPHITE INDIA"},
		medium: []string{"STEEL CORP", "ALUMINIUM", "ALUMINUM", "MINING CORP"},
		low:    []string{"STEEL", "METAL", "MINING", "COPPER", "ZINC"},
	},
	{
		sector: SectorInfra,
		high:   []string{"L&T", "LARSEN TOUBRO", "LARSEN & TOUBRO", "GMR INFRA", "GVK", "IRB INFRA", "NCC LTD", "HCC", "RITES"},
		medium: []string{"INFRASTRUCTURE", "CONSTRUCTION", "ENGINEERING SERVICES", "PROJECTS LTD"},
		low:    []string{"INFRA", "ENGINEERING", "BUILDERS", "DEVELOPERS"},
	},
	{
		sector: SectorCement,
		high:   []string{"ULTRATECH", "ACC LTD", "AMBUJA", "SHREE CEMENT", "RAMCO CEMENT", "DALMIA CEMENT"},
		medium: []string{"CEMENT CORP", "CEMENT LTD"},
		low:    []string{"CEMENT"},
	},
	{
		sector: SectorRealEstate,
		high:   []string{"DLF", "OBEROI REALTY", "GODREJ PROPERTIES", "PRESTIGE ESTATES", "BRIGADE", "SOBHA"},
		medium: []string{"REAL ESTATE", "PROPERTIES", "REALTY", "HOUSING DEVELOPMENT"},
		low:    []string{"PROPERTY", "HOUSING"},
	},
	{
		sector: SectorMedia,
		high:   []string{"ZEE ENTERTAINMENT", "SUN TV", "TV18", "NETWORK18", "PVR", "INOX"},
		medium: []string{"MEDIA", "ENTERTAINMENT", "BROADCASTING"},
		low:    []string{"FILM", "CINEMA"},
	},
}

// InferSector maps a security name to a sector by keyword scoring.
//
// Company-specific overrides are checked first and short-circuit scoring.
// Otherwise each sector scores 10 per matching high-priority keyword, 3 per
// medium and 1 per low; a keyword counts once however often it occurs. The
// first sector (in table order) to reach the highest score wins; zero
// everywhere means SectorOther.
func InferSector(securityName string) Sector {
	nameUpper := strings.ToUpper(securityName)

	for _, o := range sectorOverrides {
		if strings.Contains(nameUpper, o.key) {
			return o.sector
		}
	}

	best := SectorOther
	bestScore := 0
	for _, p := range sectorPatterns {
		score := 0
		for _, kw := range p.high {
			if strings.Contains(nameUpper, kw) {
				score += 10
			}
		}
		for _, kw := range p.medium {
			if strings.Contains(nameUpper, kw) {
				score += 3
			}
		}
		for _, kw := range p.low {
			if strings.Contains(nameUpper, kw) {
				score += 1
			}
		}
		if score > bestScore {
			best = p.sector
			bestScore = score
		}
	}
	return best
}

// SectorLookup is the optional external collaborator that can resolve a
// sector from a canonical ticker (e.g. a market-data API).
type SectorLookup interface {
	LookupSector(ticker string) (string, error)
}

// GetSector resolves a sector for a security, preferring the external
// lookup when preferAPI is set and a ticker is available. Any non-empty
// lookup result is authoritative; failures and empty answers fall through
// to name-based inference. It never returns an empty sector.
func GetSector(securityName, ticker string, preferAPI bool, lookup SectorLookup) Sector {
	if preferAPI && ticker != "" && lookup != nil {
		if s, err := lookup.LookupSector(ticker); err == nil && s != "" {
			return Sector(s)
		}
	}
	return InferSector(securityName)
}
