package storage

// Product is one performed-action record within a shift. Products are
// never edited in place: correction is remove-and-add.
type Product struct {
	ID              int64  `json:"id"`
	ReportID        string `json:"report_id"`
	ProductionOrder string `json:"production_order"`
	Name            string `json:"name"`
	HCode           string `json:"h_code"`
	TwelvNC         string `json:"twelv_nc,omitempty"`
	Comment         string `json:"comment"`
	TimeSpent       string `json:"time_spent,omitempty"`
	TechnicianName  string `json:"technician_name,omitempty"`
}

// Validate checks the required fields before anything is written.
func (p *Product) Validate() error {
	var missing []string
	if p.ProductionOrder == "" {
		missing = append(missing, "production_order")
	}
	if p.Name == "" {
		missing = append(missing, "name")
	}
	if p.HCode == "" {
		missing = append(missing, "h_code")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
