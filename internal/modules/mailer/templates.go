package mailer

import (
	"html/template"
	"strings"
)

var contactTmpl = template.Must(template.New("contact").Parse(`<div>
  <h2>New contact form message</h2>
  <p><strong>Name:</strong> {{.FirstName}} {{.LastName}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Message:</strong></p>
  <p>{{.Body}}</p>
</div>`))

var learnerTmpl = template.Must(template.New("learner").Parse(`<div>
  <h2>Welcome to Mentorloop, {{.FirstName}}!</h2>
  <p>Thanks for signing up to learn a new hobby with us.</p>
  <p>We're matching you with mentors now and will reach out as soon as
  your first sessions are ready.</p>
  <p>— The Mentorloop team</p>
</div>`))

var mentorTmpl = template.Must(template.New("mentor").Parse(`<div>
  <h2>Thanks for offering to mentor, {{.FirstName}}!</h2>
  <p>We're excited to have you share your craft.</p>
  <p>We'll review your details and introduce you to your first learners
  shortly.</p>
  <p>— The Mentorloop team</p>
</div>`))

func confirmationSubject(userType string) string {
	if userType == "mentor" {
		return "Welcome to Mentorloop — mentor signup received"
	}
	return "Welcome to Mentorloop — you're on the list"
}

// renderContact escapes user input, then turns message newlines into
// line breaks.
func renderContact(req Request) string {
	body := template.HTMLEscapeString(req.Message)
	body = strings.ReplaceAll(body, "\r\n", "\n")
	body = strings.ReplaceAll(body, "\n", "<br>")

	var b strings.Builder
	_ = contactTmpl.Execute(&b, struct {
		FirstName, LastName, Email string
		Body                       template.HTML
	}{req.FirstName, req.LastName, req.Email, template.HTML(body)})
	return b.String()
}

// renderConfirmation picks one of the two fixed templates; the only
// parameter is the first name.
func renderConfirmation(req Request) string {
	tmpl := learnerTmpl
	if req.UserType == "mentor" {
		tmpl = mentorTmpl
	}

	var b strings.Builder
	_ = tmpl.Execute(&b, struct{ FirstName string }{req.FirstName})
	return b.String()
}
