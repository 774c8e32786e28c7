package entity

import (
	"errors"
	"fmt"
)

// Page is the single navigation flag of a session.
type Page string

const (
	PageLogin       Page = "login"
	PageRegister    Page = "register"
	PageOnboarding  Page = "onboarding"
	PageDashboard   Page = "dashboard"
	PageHealthForm  Page = "health-form"
	PagePredictions Page = "predictions"
	PageDoctors     Page = "doctors"
	PageProfile     Page = "profile"
)

var ErrUnknownPage = errors.New("unknown page")

// Pages lists every navigable page in menu order.
var Pages = []Page{
	PageLogin,
	PageRegister,
	PageOnboarding,
	PageDashboard,
	PageHealthForm,
	PagePredictions,
	PageDoctors,
	PageProfile,
}

func (p Page) IsValid() bool {
	for _, known := range Pages {
		if p == known {
			return true
		}
	}
	return false
}

func ParsePage(s string) (Page, error) {
	p := Page(s)
	if !p.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPage, s)
	}
	return p, nil
}

// UnmarshalText rejects values outside the closed page set.
func (p *Page) UnmarshalText(text []byte) error {
	parsed, err := ParsePage(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
