package league

import "fmt"

// League is a competition in the reference catalog.
type League struct {
	ID      string
	Name    string
	Country string
	Slug    string
}

func (l League) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.Country == "" {
		return fmt.Errorf("league country is required")
	}

	return nil
}
