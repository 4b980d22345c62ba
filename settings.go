package pulley

// Settings is the process-wide valuation configuration. It is passed
// explicitly into the valuation factory and the renderers, never read from
// ambient state, so the engine stays testable without environment setup.
type Settings struct {
	CompanyName     string `json:"companyName"`
	CompanyAddress  string `json:"companyAddress,omitempty"`
	GSTNo           string `json:"gstNo,omitempty"`
	DefaultRate     Money  `json:"defaultRate"`
	BoreRatePerUnit Money  `json:"boreRatePerUnit"`
	// Currency is either an ISO-4217 code (formatted via go-money at render
	// time) or a raw symbol prefixed verbatim. Empty means no currency mark.
	Currency string `json:"currency,omitempty"`
}

// DefaultSettings returns the settings a fresh installation starts with.
func DefaultSettings() Settings {
	return Settings{
		CompanyName:     "My Company",
		DefaultRate:     M(6),
		BoreRatePerUnit: M(50),
	}
}
