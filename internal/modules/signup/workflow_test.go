package signup

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"

	"mentorloop/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRepo is a hand-rolled repository for workflow tests; the
// blocking hooks let a test hold a call open mid-flight.
type stubRepo struct {
	mu        sync.Mutex
	existing  map[string]bool
	existErr  error
	createErr error
	created   []*domain.Signup

	blockExists chan struct{} // when set, ExistsByEmail waits on it
}

func newStubRepo() *stubRepo {
	return &stubRepo{existing: make(map[string]bool)}
}

func (r *stubRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if r.blockExists != nil {
		<-r.blockExists
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.existErr != nil {
		return false, r.existErr
	}
	return r.existing[email], nil
}

func (r *stubRepo) Create(_ context.Context, s *domain.Signup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	s.ID = int64(len(r.created) + 1)
	r.created = append(r.created, s)
	r.existing[s.Email] = true
	return nil
}

func newWorkflowWithRepo(t *testing.T, repo *stubRepo) *Workflow {
	t.Helper()
	svc := NewService(repo, newStubRepo(), nil, nil)
	return NewWorkflow(domain.VariantLearner, svc)
}

func fillBasicInfo(wf *Workflow) {
	wf.SetFields(map[string]string{
		FieldFirstName: "Maya",
		FieldLastName:  "Lindqvist",
		FieldEmail:     "maya@example.com",
	})
}

func TestWorkflow_BlankFieldsBlockPageOne(t *testing.T) {
	wf := newWorkflowWithRepo(t, newStubRepo())
	wf.SetFields(map[string]string{
		FieldFirstName: "   ",
		FieldLastName:  "",
		FieldEmail:     "",
	})

	err := wf.AdvanceBasicInfo(context.Background())

	var fieldErrs FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Contains(t, fieldErrs, FieldFirstName)
	assert.Contains(t, fieldErrs, FieldLastName)
	assert.Contains(t, fieldErrs, FieldEmail)

	state := wf.State()
	assert.Equal(t, PageBasicInfo, state.CurrentPage)
	assert.False(t, state.Submitting)
}

func TestWorkflow_MalformedEmailFlagged(t *testing.T) {
	wf := newWorkflowWithRepo(t, newStubRepo())
	wf.SetFields(map[string]string{
		FieldFirstName: "Maya",
		FieldLastName:  "Lindqvist",
		FieldEmail:     "not-an-email",
	})

	err := wf.AdvanceBasicInfo(context.Background())

	var fieldErrs FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Equal(t, msgEmailInvalid, fieldErrs[FieldEmail])
}

func TestWorkflow_TypoDomainSuggestsCorrection(t *testing.T) {
	wf := newWorkflowWithRepo(t, newStubRepo())
	wf.SetFields(map[string]string{
		FieldFirstName: "Maya",
		FieldLastName:  "Lindqvist",
		FieldEmail:     "maya@gmial.com",
	})

	err := wf.AdvanceBasicInfo(context.Background())

	var fieldErrs FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Equal(t, "Did you mean maya@gmail.com?", fieldErrs[FieldEmail])
}

func TestWorkflow_DuplicateEmailBlocksAdvance(t *testing.T) {
	repo := newStubRepo()
	repo.existing["maya@example.com"] = true
	wf := newWorkflowWithRepo(t, repo)
	fillBasicInfo(wf)

	err := wf.AdvanceBasicInfo(context.Background())

	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
	state := wf.State()
	assert.Equal(t, PageBasicInfo, state.CurrentPage)
	assert.Equal(t, msgEmailRegistered, state.Errors[FieldEmail])
	assert.False(t, state.Submitting)
}

func TestWorkflow_NovelEmailAdvances(t *testing.T) {
	wf := newWorkflowWithRepo(t, newStubRepo())
	fillBasicInfo(wf)

	require.NoError(t, wf.AdvanceBasicInfo(context.Background()))
	assert.Equal(t, PageDetails, wf.State().CurrentPage)
}

func TestWorkflow_CheckFailureStaysAndSetsSubmitError(t *testing.T) {
	repo := newStubRepo()
	repo.existErr = errors.New("timeout")
	wf := newWorkflowWithRepo(t, repo)
	fillBasicInfo(wf)

	err := wf.AdvanceBasicInfo(context.Background())

	assert.ErrorIs(t, err, ErrCheckUnavailable)
	state := wf.State()
	assert.Equal(t, PageBasicInfo, state.CurrentPage)
	assert.Equal(t, msgSubmitFailed, state.SubmitError)
	assert.False(t, state.Submitting)
}

func TestWorkflow_BackClearsErrorsKeepsFields(t *testing.T) {
	wf := newWorkflowWithRepo(t, newStubRepo())
	fillBasicInfo(wf)
	require.NoError(t, wf.AdvanceBasicInfo(context.Background()))

	// Fail page-2 validation to put errors on the board.
	_, err := wf.SubmitDetails(context.Background())
	require.Error(t, err)
	require.NoError(t, wf.Back())

	state := wf.State()
	assert.Equal(t, PageBasicInfo, state.CurrentPage)
	assert.Empty(t, state.Errors)
	assert.Equal(t, "maya@example.com", state.Fields[FieldEmail])
	assert.Equal(t, "Maya", state.Fields[FieldFirstName])
}

func TestWorkflow_SubmitCreatesRecordOnce(t *testing.T) {
	repo := newStubRepo()
	wf := newWorkflowWithRepo(t, repo)
	fillBasicInfo(wf)
	require.NoError(t, wf.AdvanceBasicInfo(context.Background()))

	wf.SetFields(map[string]string{
		FieldInterest:     "Watercolor painting",
		FieldNotifyLaunch: "true",
		FieldHowHeard:     domain.SourceFriend,
	})

	created, err := wf.SubmitDetails(context.Background())
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "maya@example.com", created.Email)
	assert.True(t, created.NotifyLaunch)
	assert.False(t, created.ParticipateResearch)
	assert.Equal(t, PageConfirmation, wf.State().CurrentPage)
	assert.True(t, wf.State().Done)
	require.Len(t, repo.created, 1)

	// Page 3 is terminal.
	_, err = wf.SubmitDetails(context.Background())
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Len(t, repo.created, 1)
}

func TestWorkflow_BlankInterestBlocksSubmit(t *testing.T) {
	wf := newWorkflowWithRepo(t, newStubRepo())
	fillBasicInfo(wf)
	require.NoError(t, wf.AdvanceBasicInfo(context.Background()))

	wf.SetField(FieldInterest, "   ")
	_, err := wf.SubmitDetails(context.Background())

	var fieldErrs FieldErrors
	require.True(t, errors.As(err, &fieldErrs))
	assert.Equal(t, msgInterestRequired, fieldErrs[FieldInterest])
	assert.Equal(t, PageDetails, wf.State().CurrentPage)
}

func TestWorkflow_FailedInsertStaysOnDetails(t *testing.T) {
	repo := newStubRepo()
	wf := newWorkflowWithRepo(t, repo)
	fillBasicInfo(wf)
	require.NoError(t, wf.AdvanceBasicInfo(context.Background()))

	repo.mu.Lock()
	repo.createErr = errors.New("connection reset")
	repo.mu.Unlock()

	wf.SetField(FieldInterest, "Sourdough baking")
	_, err := wf.SubmitDetails(context.Background())

	assert.ErrorIs(t, err, ErrCheckUnavailable)
	state := wf.State()
	assert.Equal(t, PageDetails, state.CurrentPage)
	assert.Equal(t, msgSubmitFailed, state.SubmitError)
	assert.False(t, state.Submitting)
}

func TestWorkflow_EditClearsThatFieldsError(t *testing.T) {
	wf := newWorkflowWithRepo(t, newStubRepo())
	wf.SetFields(map[string]string{
		FieldFirstName: "",
		FieldLastName:  "",
		FieldEmail:     "maya@example.com",
	})
	_ = wf.AdvanceBasicInfo(context.Background())
	require.Contains(t, wf.State().Errors, FieldFirstName)

	wf.SetField(FieldFirstName, "Maya")

	state := wf.State()
	assert.NotContains(t, state.Errors, FieldFirstName)
	assert.Contains(t, state.Errors, FieldLastName)
}

func TestWorkflow_RejectsReentrantSubmit(t *testing.T) {
	repo := newStubRepo()
	repo.blockExists = make(chan struct{})
	wf := newWorkflowWithRepo(t, repo)
	fillBasicInfo(wf)

	started := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		close(started)
		done <- wf.AdvanceBasicInfo(context.Background())
	}()
	<-started

	// Wait until the first call holds the guard.
	for !wf.State().Submitting {
		runtime.Gosched()
	}

	err := wf.AdvanceBasicInfo(context.Background())
	assert.ErrorIs(t, err, ErrSubmitInProgress)

	close(repo.blockExists)
	require.NoError(t, <-done)
	assert.Equal(t, PageDetails, wf.State().CurrentPage)
}
