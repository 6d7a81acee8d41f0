package web

import "testing"

func TestTemplates_AllPagesPresent(t *testing.T) {
	tpl := Templates()
	for _, name := range []string{
		"welcome.html.tmpl",
		"login.html.tmpl",
		"forgot_password.html.tmpl",
		"set_password.html.tmpl",
		"dashboard.html.tmpl",
		"applicant.html.tmpl",
	} {
		if tpl.Lookup(name) == nil {
			t.Fatalf("template %q not parsed", name)
		}
	}
}
