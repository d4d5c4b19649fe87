package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/adityapratama/gymflow/internal/domain/bookings"
	"github.com/adityapratama/gymflow/internal/domain/classes"
	"github.com/adityapratama/gymflow/internal/domain/users"
	"github.com/adityapratama/gymflow/internal/platform/config"
	"github.com/adityapratama/gymflow/internal/platform/queue"
	"github.com/adityapratama/gymflow/pkg/constant"
	"github.com/adityapratama/gymflow/pkg/response"
)

type fakeBookingRepo struct {
	stored []bookings.Booking
}

func (f *fakeBookingRepo) CreateBooking(ctx context.Context, booking *bookings.Booking, traineeExtIDs []string) error {
	b := *booking
	for _, id := range traineeExtIDs {
		b.Trainees = append(b.Trainees, bookings.BookingTrainee{TraineeExtID: id})
	}
	f.stored = append(f.stored, b)
	return nil
}

func (f *fakeBookingRepo) FindByExtID(ctx context.Context, extID string) (*bookings.Booking, error) {
	for i := range f.stored {
		if f.stored[i].ExtID == extID {
			return &f.stored[i], nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindAll(ctx context.Context) ([]bookings.Booking, error) {
	return f.stored, nil
}

func (f *fakeBookingRepo) HasTraineeLink(ctx context.Context, classExtID, traineeExtID string) (bool, error) {
	for _, b := range f.stored {
		if b.ClassExtID != classExtID {
			continue
		}
		for _, link := range b.Trainees {
			if link.TraineeExtID == traineeExtID {
				return true, nil
			}
		}
	}
	return false, nil
}

type fakeClassResolver struct {
	classes map[string]*classes.Class
	err     error
}

func (f *fakeClassResolver) ResolveClass(ctx context.Context, classExtID string) (*classes.Class, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.classes[classExtID], nil
}

type fakeTraineeResolver struct {
	trainees map[string]*users.User
}

func (f *fakeTraineeResolver) ResolveTrainee(ctx context.Context, traineeExtID string) (*users.User, error) {
	return f.trainees[traineeExtID], nil
}

type fakePublisher struct {
	jobs []queue.BookingNotification
	err  error
}

func (f *fakePublisher) PublishBookingNotification(ctx context.Context, job queue.BookingNotification) error {
	if f.err != nil {
		return f.err
	}
	f.jobs = append(f.jobs, job)
	return nil
}

type fixture struct {
	usecase   *Usecase
	repo      *fakeBookingRepo
	publisher *fakePublisher
}

func newFixture(opts config.BookingConfig) *fixture {
	repo := &fakeBookingRepo{}
	classResolver := &fakeClassResolver{classes: map[string]*classes.Class{
		"class_yoga": {
			ExtID:        "class_yoga",
			Title:        "Yoga",
			Date:         "2025-01-20",
			StartTime:    "10:00 AM",
			EndTime:      "12:00 PM",
			TrainerExtID: "user_trainer1",
		},
	}}
	traineeResolver := &fakeTraineeResolver{trainees: map[string]*users.User{
		"user_t1": {ExtID: "user_t1", Name: "T1", Email: "t1@x.com", Role: constant.RoleTrainee},
		"user_t2": {ExtID: "user_t2", Name: "T2", Email: "t2@x.com", Role: constant.RoleTrainee},
		"user_x":  {ExtID: "user_x", Name: "X", Email: "x@x.com", Role: constant.RoleTrainer},
	}}
	publisher := &fakePublisher{}
	return &fixture{
		usecase:   NewUsecase(repo, classResolver, traineeResolver, publisher, opts),
		repo:      repo,
		publisher: publisher,
	}
}

func apiErr(t *testing.T, err error) *response.APIError {
	t.Helper()
	var apiErr *response.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	return apiErr
}

func TestBookClass(t *testing.T) {
	f := newFixture(config.BookingConfig{})

	result, err := f.usecase.BookClass(context.Background(), bookings.BookClassRequest{
		Class:    "class_yoga",
		Trainees: []string{"user_t1", "user_t2"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ExtID == "" {
		t.Fatal("expected a booking id")
	}
	if result.Class == nil || result.Class.Title != "Yoga" {
		t.Fatalf("class not enriched: %+v", result.Class)
	}
	if len(result.Trainees) != 2 {
		t.Fatalf("expected 2 trainee profiles, got %d", len(result.Trainees))
	}

	if len(f.publisher.jobs) != 1 {
		t.Fatalf("expected 1 published job, got %d", len(f.publisher.jobs))
	}
	job := f.publisher.jobs[0]
	if job.BookingExtID != result.ExtID || job.ClassTitle != "Yoga" {
		t.Fatalf("unexpected job: %+v", job)
	}
	if len(job.TraineeEmails) != 2 {
		t.Fatalf("expected 2 recipients, got %v", job.TraineeEmails)
	}
}

// A booking for a class id that resolves to nothing still succeeds; the
// reference is advisory and the class field comes back null.
func TestBookClassDanglingClassReference(t *testing.T) {
	f := newFixture(config.BookingConfig{})

	result, err := f.usecase.BookClass(context.Background(), bookings.BookClassRequest{
		Class:    "class_ghost",
		Trainees: []string{"user_t1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Class != nil {
		t.Fatalf("expected nil class, got %+v", result.Class)
	}
}

func TestBookClassResolverFailure(t *testing.T) {
	f := newFixture(config.BookingConfig{})
	f.usecase.classes = &fakeClassResolver{err: errors.New("db down")}

	_, err := f.usecase.BookClass(context.Background(), bookings.BookClassRequest{
		Class:    "class_yoga",
		Trainees: []string{"user_t1"},
	})
	got := apiErr(t, err)
	if got.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", got.Code)
	}
}

func TestBookClassPublishFailureDoesNotFailBooking(t *testing.T) {
	f := newFixture(config.BookingConfig{})
	f.publisher.err = errors.New("redis down")

	result, err := f.usecase.BookClass(context.Background(), bookings.BookClassRequest{
		Class:    "class_yoga",
		Trainees: []string{"user_t1"},
	})
	if err != nil {
		t.Fatalf("booking failed on publish error: %v", err)
	}
	if result.ExtID == "" {
		t.Fatal("expected a booking id")
	}
}

func TestBookClassRequireTraineeRole(t *testing.T) {
	f := newFixture(config.BookingConfig{RequireTraineeRole: true})

	// user_x is a trainer, not a trainee.
	_, err := f.usecase.BookClass(context.Background(), bookings.BookClassRequest{
		Class:    "class_yoga",
		Trainees: []string{"user_t1", "user_x"},
	})
	got := apiErr(t, err)
	if got.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", got.Code)
	}
	if got.Message != "All trainees must be registered trainee accounts" {
		t.Fatalf("unexpected message %q", got.Message)
	}

	// Unknown ids are rejected the same way.
	_, err = f.usecase.BookClass(context.Background(), bookings.BookClassRequest{
		Class:    "class_yoga",
		Trainees: []string{"user_ghost"},
	})
	if apiErr(t, err).Code != http.StatusBadRequest {
		t.Fatal("expected 400 for unknown trainee")
	}
}

func TestBookClassPreventDuplicates(t *testing.T) {
	f := newFixture(config.BookingConfig{PreventDuplicates: true})

	if _, err := f.usecase.BookClass(context.Background(), bookings.BookClassRequest{
		Class:    "class_yoga",
		Trainees: []string{"user_t1"},
	}); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}

	_, err := f.usecase.BookClass(context.Background(), bookings.BookClassRequest{
		Class:    "class_yoga",
		Trainees: []string{"user_t1"},
	})
	got := apiErr(t, err)
	if got.Message != "Trainee is already booked for this class" {
		t.Fatalf("unexpected message %q", got.Message)
	}

	// The same trainee can still book a different class.
	if _, err := f.usecase.BookClass(context.Background(), bookings.BookClassRequest{
		Class:    "class_other",
		Trainees: []string{"user_t1"},
	}); err != nil {
		t.Fatalf("booking another class failed: %v", err)
	}
}

func TestListBookings(t *testing.T) {
	f := newFixture(config.BookingConfig{})

	for _, trainee := range []string{"user_t1", "user_t2"} {
		if _, err := f.usecase.BookClass(context.Background(), bookings.BookClassRequest{
			Class:    "class_yoga",
			Trainees: []string{trainee},
		}); err != nil {
			t.Fatalf("booking failed: %v", err)
		}
	}

	list, err := f.usecase.ListBookings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(list))
	}
	for _, b := range list {
		if b.Class == nil || len(b.Trainees) != 1 {
			t.Fatalf("booking not enriched: %+v", b)
		}
	}
}
