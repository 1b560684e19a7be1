package signup

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"mentorloop/internal/domain"
)

// Pages of the signup form.
const (
	PageBasicInfo    = 1
	PageDetails      = 2
	PageConfirmation = 3
)

const msgSubmitFailed = "Something went wrong. Please try again."

// Workflow drives one 3-page signup form: basic info, details,
// confirmation. Page 3 is terminal. At most one duplicate-check or
// insert is in flight at a time; re-entrant triggers are rejected
// instead of queued.
type Workflow struct {
	mu sync.Mutex

	variant    domain.Variant
	svc        *Service
	page       int
	fields     map[string]string
	errors     FieldErrors
	submitErr  string
	submitting bool
}

// State is a snapshot of the workflow for the client.
type State struct {
	CurrentPage int               `json:"currentPage"`
	Fields      map[string]string `json:"fields"`
	Errors      map[string]string `json:"errors"`
	SubmitError string            `json:"submitError,omitempty"`
	Submitting  bool              `json:"submitting"`
	Done        bool              `json:"done"`
}

func NewWorkflow(variant domain.Variant, svc *Service) *Workflow {
	return &Workflow{
		variant: variant,
		svc:     svc,
		page:    PageBasicInfo,
		fields:  make(map[string]string),
		errors:  FieldErrors{},
	}
}

// SetField records an edit. The field's own error clears immediately;
// the rest stay until the next validation pass recomputes them.
func (w *Workflow) SetField(name, value string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.fields[name] = value
	delete(w.errors, name)
}

// SetFields applies a batch of edits.
func (w *Workflow) SetFields(fields map[string]string) {
	for name, value := range fields {
		w.SetField(name, value)
	}
}

func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	fields := make(map[string]string, len(w.fields))
	for k, v := range w.fields {
		fields[k] = v
	}
	errs := make(map[string]string, len(w.errors))
	for k, v := range w.errors {
		errs[k] = v
	}

	return State{
		CurrentPage: w.page,
		Fields:      fields,
		Errors:      errs,
		SubmitError: w.submitErr,
		Submitting:  w.submitting,
		Done:        w.page == PageConfirmation,
	}
}

// begin takes the submitting guard if the workflow sits on wantPage and
// local validation passes.
func (w *Workflow) begin(wantPage int, validate func(map[string]string) FieldErrors) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.page != wantPage {
		return ErrInvalidTransition
	}
	if w.submitting {
		return ErrSubmitInProgress
	}

	if errs := validate(w.fields); len(errs) > 0 {
		w.errors = errs
		return errs
	}

	w.errors = FieldErrors{}
	w.submitErr = ""
	w.submitting = true
	return nil
}

// finish releases the guard and applies the outcome of the network
// call. The triggering control is re-enabled on every failure path.
func (w *Workflow) finish(nextPage int, err error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.submitting = false

	switch {
	case err == nil:
		w.page = nextPage
		w.errors = FieldErrors{}
		w.submitErr = ""
		return nil
	case errors.Is(err, ErrEmailAlreadyRegistered):
		w.errors[FieldEmail] = msgEmailRegistered
		return err
	default:
		w.submitErr = msgSubmitFailed
		return err
	}
}

// AdvanceBasicInfo validates page 1 and runs the duplicate check. On
// success the workflow moves to the details page.
func (w *Workflow) AdvanceBasicInfo(ctx context.Context) error {
	if err := w.begin(PageBasicInfo, validateBasicInfo); err != nil {
		return err
	}

	w.mu.Lock()
	email := w.fields[FieldEmail]
	w.mu.Unlock()

	err := w.svc.CheckEmail(ctx, w.variant, email)
	return w.finish(PageDetails, err)
}

// Back returns from details to basic info, clearing all validation
// errors but keeping field values.
func (w *Workflow) Back() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.page != PageDetails || w.submitting {
		return ErrInvalidTransition
	}
	w.page = PageBasicInfo
	w.errors = FieldErrors{}
	w.submitErr = ""
	return nil
}

// SubmitDetails validates page 2 and inserts the record. The record is
// created here and only here; success is a one-way move to the
// confirmation page.
func (w *Workflow) SubmitDetails(ctx context.Context) (*domain.Signup, error) {
	if err := w.begin(PageDetails, validateDetails); err != nil {
		return nil, err
	}

	rec := w.record()
	created, err := w.svc.Create(ctx, w.variant, rec)
	if ferr := w.finish(PageConfirmation, err); ferr != nil {
		return nil, ferr
	}
	return created, nil
}

// record builds the signup row from the accumulated field values.
// Callers hold no lock; fields are only read under one.
func (w *Workflow) record() *domain.Signup {
	w.mu.Lock()
	defer w.mu.Unlock()

	return &domain.Signup{
		Email:               w.fields[FieldEmail],
		FirstName:           w.fields[FieldFirstName],
		LastName:            w.fields[FieldLastName],
		Phone:               w.fields[FieldPhone],
		Interest:            w.fields[FieldInterest],
		ParticipateResearch: parseBool(w.fields[FieldParticipateResearch]),
		NotifyLaunch:        parseBool(w.fields[FieldNotifyLaunch]),
		HowHeard:            w.fields[FieldHowHeard],
		OtherSource:         w.fields[FieldOtherSource],
	}
}

func parseBool(v string) bool {
	b, _ := strconv.ParseBool(v)
	return b
}
