package access

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"sharevault/internal/domain/audit"
	"sharevault/internal/domain/item"
	"sharevault/internal/domain/share"
	"sharevault/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/exp/slog"
)

// MockShareRepository is a mock implementation of share.Repository for testing
type MockShareRepository struct {
	mock.Mock
}

func (m *MockShareRepository) Create(ctx context.Context, link *share.Link) (int, error) {
	args := m.Called(ctx, link)
	return args.Int(0), args.Error(1)
}

func (m *MockShareRepository) GetByToken(ctx context.Context, token string) (*share.Link, error) {
	args := m.Called(ctx, token)
	if link := args.Get(0); link != nil {
		return link.(*share.Link), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShareRepository) GetByID(ctx context.Context, linkID int) (*share.Link, error) {
	args := m.Called(ctx, linkID)
	if link := args.Get(0); link != nil {
		return link.(*share.Link), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShareRepository) ListByItem(ctx context.Context, itemID int) ([]share.Link, error) {
	args := m.Called(ctx, itemID)
	if links := args.Get(0); links != nil {
		return links.([]share.Link), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockShareRepository) Update(ctx context.Context, link *share.Link) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockShareRepository) SoftDelete(ctx context.Context, linkID int) error {
	args := m.Called(ctx, linkID)
	return args.Error(0)
}

func (m *MockShareRepository) IncrementViews(ctx context.Context, linkID int) (bool, error) {
	args := m.Called(ctx, linkID)
	return args.Bool(0), args.Error(1)
}

// MockItemRepository is a mock implementation of item.Repository for testing
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, it *item.Item) (int, error) {
	args := m.Called(ctx, it)
	return args.Int(0), args.Error(1)
}

func (m *MockItemRepository) Get(ctx context.Context, itemID int) (*item.Item, error) {
	args := m.Called(ctx, itemID)
	if it := args.Get(0); it != nil {
		return it.(*item.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemRepository) List(ctx context.Context, ownerID, offset, limit int) ([]item.Item, error) {
	args := m.Called(ctx, ownerID, offset, limit)
	if items := args.Get(0); items != nil {
		return items.([]item.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockItemRepository) Update(ctx context.Context, it *item.Item) error {
	args := m.Called(ctx, it)
	return args.Error(0)
}

// recordingAuditor captures every appended outcome so tests can assert on
// exactly what was logged.
type recordingAuditor struct {
	mu      sync.Mutex
	entries []audit.Outcome
}

func (r *recordingAuditor) Append(_ context.Context, _ int, outcome audit.Outcome, _ string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, outcome)
}

func (r *recordingAuditor) outcomes() []audit.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]audit.Outcome(nil), r.entries...)
}

var evalNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type evalFixture struct {
	shares  *MockShareRepository
	items   *MockItemRepository
	auditor *recordingAuditor
	slept   []time.Duration
	eval    *Evaluator
}

func newEvalFixture() *evalFixture {
	f := &evalFixture{
		shares:  new(MockShareRepository),
		items:   new(MockItemRepository),
		auditor: &recordingAuditor{},
	}

	f.eval = NewEvaluator(f.shares, f.items, f.auditor, user.NewBcryptHasher(), 2*time.Second, slog.Default())
	f.eval.now = func() time.Time { return evalNow }
	f.eval.sleep = func(d time.Duration) { f.slept = append(f.slept, d) }

	return f
}

func activeLink() *share.Link {
	return &share.Link{
		ID:           7,
		ItemID:       42,
		Token:        "tok",
		ExpiresAt:    evalNow.Add(time.Hour),
		MaxViews:     5,
		CurrentViews: 2,
		IsActive:     true,
	}
}

func TestEvaluator_Attempt_Allowed(t *testing.T) {
	f := newEvalFixture()

	f.shares.On("GetByToken", mock.Anything, "tok").Return(activeLink(), nil)
	f.shares.On("IncrementViews", mock.Anything, 7).Return(true, nil)
	f.items.On("Get", mock.Anything, 42).Return(&item.Item{ID: 42, Content: "s3cret"}, nil)

	content, err := f.eval.Attempt(context.Background(), "tok", "", "203.0.113.9")
	assert.NoError(t, err)
	assert.Equal(t, "s3cret", content.Content)
	assert.Equal(t, "Access granted.", content.Message)
	assert.Equal(t, []audit.Outcome{audit.OutcomeAllowed}, f.auditor.outcomes())
	assert.Empty(t, f.slept)

	f.shares.AssertExpectations(t)
	f.items.AssertExpectations(t)
}

func TestEvaluator_Attempt_UnknownToken(t *testing.T) {
	f := newEvalFixture()

	f.shares.On("GetByToken", mock.Anything, "missing").Return(nil, share.ErrNotFound)

	_, err := f.eval.Attempt(context.Background(), "missing", "", "203.0.113.9")
	assert.ErrorIs(t, err, share.ErrNotFound)
	// nothing to log an attempt against
	assert.Empty(t, f.auditor.outcomes())
	f.shares.AssertNotCalled(t, "IncrementViews")
}

func TestEvaluator_Attempt_Revoked(t *testing.T) {
	f := newEvalFixture()

	link := activeLink()
	link.IsActive = false
	f.shares.On("GetByToken", mock.Anything, "tok").Return(link, nil)

	_, err := f.eval.Attempt(context.Background(), "tok", "", "203.0.113.9")
	assert.ErrorIs(t, err, share.ErrRevoked)
	assert.Equal(t, []audit.Outcome{audit.OutcomeRevoked}, f.auditor.outcomes())
	f.shares.AssertNotCalled(t, "IncrementViews")
}

func TestEvaluator_Attempt_Expired(t *testing.T) {
	f := newEvalFixture()

	link := activeLink()
	link.ExpiresAt = evalNow.Add(-time.Minute)
	f.shares.On("GetByToken", mock.Anything, "tok").Return(link, nil)

	_, err := f.eval.Attempt(context.Background(), "tok", "", "203.0.113.9")
	assert.ErrorIs(t, err, share.ErrExpired)
	assert.Equal(t, []audit.Outcome{audit.OutcomeExpired}, f.auditor.outcomes())
	f.shares.AssertNotCalled(t, "IncrementViews")
}

func TestEvaluator_Attempt_Exhausted(t *testing.T) {
	f := newEvalFixture()

	link := activeLink()
	link.CurrentViews = link.MaxViews
	f.shares.On("GetByToken", mock.Anything, "tok").Return(link, nil)

	_, err := f.eval.Attempt(context.Background(), "tok", "", "203.0.113.9")
	assert.ErrorIs(t, err, share.ErrExhausted)
	assert.Equal(t, []audit.Outcome{audit.OutcomeViewLimit}, f.auditor.outcomes())
	f.shares.AssertNotCalled(t, "IncrementViews")
}

func TestEvaluator_Attempt_RevokedBeforeExpired(t *testing.T) {
	f := newEvalFixture()

	// every lockout condition holds at once; revocation must be the answer
	link := activeLink()
	link.IsActive = false
	link.ExpiresAt = evalNow.Add(-time.Hour)
	link.CurrentViews = link.MaxViews
	f.shares.On("GetByToken", mock.Anything, "tok").Return(link, nil)

	_, err := f.eval.Attempt(context.Background(), "tok", "", "203.0.113.9")
	assert.ErrorIs(t, err, share.ErrRevoked)
	assert.Equal(t, []audit.Outcome{audit.OutcomeRevoked}, f.auditor.outcomes())
}

func TestEvaluator_Attempt_WrongPassword(t *testing.T) {
	f := newEvalFixture()

	hasher := user.NewBcryptHasher()
	hash, err := hasher.Hash("correct-horse")
	assert.NoError(t, err)

	link := activeLink()
	link.PasswordHash = hash
	f.shares.On("GetByToken", mock.Anything, "tok").Return(link, nil)

	_, err = f.eval.Attempt(context.Background(), "tok", "battery-staple", "203.0.113.9")
	assert.ErrorIs(t, err, share.ErrBadPassword)
	assert.Equal(t, []audit.Outcome{audit.OutcomeBadPassword}, f.auditor.outcomes())
	assert.Equal(t, []time.Duration{2 * time.Second}, f.slept)
	f.shares.AssertNotCalled(t, "IncrementViews")
}

func TestEvaluator_Attempt_MissingPassword(t *testing.T) {
	f := newEvalFixture()

	hasher := user.NewBcryptHasher()
	hash, err := hasher.Hash("correct-horse")
	assert.NoError(t, err)

	link := activeLink()
	link.PasswordHash = hash
	f.shares.On("GetByToken", mock.Anything, "tok").Return(link, nil)

	_, err = f.eval.Attempt(context.Background(), "tok", "", "203.0.113.9")
	assert.ErrorIs(t, err, share.ErrBadPassword)
	assert.Len(t, f.slept, 1)
}

func TestEvaluator_Attempt_CorrectPassword(t *testing.T) {
	f := newEvalFixture()

	hasher := user.NewBcryptHasher()
	hash, err := hasher.Hash("correct-horse")
	assert.NoError(t, err)

	link := activeLink()
	link.PasswordHash = hash
	f.shares.On("GetByToken", mock.Anything, "tok").Return(link, nil)
	f.shares.On("IncrementViews", mock.Anything, 7).Return(true, nil)
	f.items.On("Get", mock.Anything, 42).Return(&item.Item{ID: 42, Content: "s3cret"}, nil)

	content, err := f.eval.Attempt(context.Background(), "tok", "correct-horse", "203.0.113.9")
	assert.NoError(t, err)
	assert.Equal(t, "s3cret", content.Content)
	assert.Empty(t, f.slept)
}

func TestEvaluator_Attempt_RevokedSkipsPasswordCheck(t *testing.T) {
	f := newEvalFixture()

	hasher := user.NewBcryptHasher()
	hash, err := hasher.Hash("correct-horse")
	assert.NoError(t, err)

	// a revoked link denies before the password is even looked at
	link := activeLink()
	link.IsActive = false
	link.PasswordHash = hash
	f.shares.On("GetByToken", mock.Anything, "tok").Return(link, nil)

	_, err = f.eval.Attempt(context.Background(), "tok", "totally wrong", "203.0.113.9")
	assert.ErrorIs(t, err, share.ErrRevoked)
	assert.Empty(t, f.slept)
}

func TestEvaluator_Attempt_LostIncrementRace(t *testing.T) {
	f := newEvalFixture()

	// the snapshot looked fine but another attempt took the last view first
	link := activeLink()
	link.CurrentViews = link.MaxViews - 1
	f.shares.On("GetByToken", mock.Anything, "tok").Return(link, nil)
	f.shares.On("IncrementViews", mock.Anything, 7).Return(false, nil)

	_, err := f.eval.Attempt(context.Background(), "tok", "", "203.0.113.9")
	assert.ErrorIs(t, err, share.ErrExhausted)
	assert.Equal(t, []audit.Outcome{audit.OutcomeViewLimit}, f.auditor.outcomes())
	f.items.AssertNotCalled(t, "Get")
}

func TestEvaluator_Attempt_IncrementError(t *testing.T) {
	f := newEvalFixture()

	f.shares.On("GetByToken", mock.Anything, "tok").Return(activeLink(), nil)
	f.shares.On("IncrementViews", mock.Anything, 7).Return(false, errors.New("database error"))

	_, err := f.eval.Attempt(context.Background(), "tok", "", "203.0.113.9")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	assert.Empty(t, f.auditor.outcomes())
}

// casShareRepository is an in-memory share.Repository whose IncrementViews
// has the same conditional-update semantics as the SQL one.
type casShareRepository struct {
	mu   sync.Mutex
	link share.Link
}

func (r *casShareRepository) Create(context.Context, *share.Link) (int, error) {
	return 0, errors.New("not implemented")
}

func (r *casShareRepository) GetByToken(_ context.Context, token string) (*share.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if token != r.link.Token {
		return nil, share.ErrNotFound
	}
	snapshot := r.link
	return &snapshot, nil
}

func (r *casShareRepository) GetByID(_ context.Context, linkID int) (*share.Link, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if linkID != r.link.ID {
		return nil, share.ErrNotFound
	}
	snapshot := r.link
	return &snapshot, nil
}

func (r *casShareRepository) ListByItem(context.Context, int) ([]share.Link, error) {
	return nil, errors.New("not implemented")
}

func (r *casShareRepository) Update(context.Context, *share.Link) error {
	return errors.New("not implemented")
}

func (r *casShareRepository) SoftDelete(context.Context, int) error {
	return errors.New("not implemented")
}

func (r *casShareRepository) IncrementViews(_ context.Context, linkID int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if linkID != r.link.ID || r.link.CurrentViews >= r.link.MaxViews {
		return false, nil
	}
	r.link.CurrentViews++
	return true, nil
}

type staticItemRepository struct {
	it item.Item
}

func (r *staticItemRepository) Create(context.Context, *item.Item) (int, error) {
	return 0, errors.New("not implemented")
}

func (r *staticItemRepository) Get(context.Context, int) (*item.Item, error) {
	snapshot := r.it
	return &snapshot, nil
}

func (r *staticItemRepository) List(context.Context, int, int, int) ([]item.Item, error) {
	return nil, errors.New("not implemented")
}

func (r *staticItemRepository) Update(context.Context, *item.Item) error {
	return errors.New("not implemented")
}

func TestEvaluator_Attempt_ConcurrentViewLimit(t *testing.T) {
	const maxViews = 5
	const attempts = maxViews + 20

	repo := &casShareRepository{
		link: share.Link{
			ID:        7,
			ItemID:    42,
			Token:     "tok",
			ExpiresAt: evalNow.Add(time.Hour),
			MaxViews:  maxViews,
			IsActive:  true,
		},
	}
	items := &staticItemRepository{it: item.Item{ID: 42, Content: "s3cret"}}
	auditor := &recordingAuditor{}

	eval := NewEvaluator(repo, items, auditor, user.NewBcryptHasher(), 0, slog.Default())
	eval.now = func() time.Time { return evalNow }
	eval.sleep = func(time.Duration) {}

	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := eval.Attempt(context.Background(), "tok", "", "203.0.113.9")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var allowed, exhausted int
	for err := range results {
		switch {
		case err == nil:
			allowed++
		case errors.Is(err, share.ErrExhausted):
			exhausted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, maxViews, allowed)
	assert.Equal(t, attempts-maxViews, exhausted)
	assert.Equal(t, maxViews, repo.link.CurrentViews)
	assert.Len(t, auditor.outcomes(), attempts)
}
