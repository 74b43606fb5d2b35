package usecase

import (
	"context"
	"time"

	"hotel-manager/internal/data/entity"
	"hotel-manager/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes backing the service tests.

type fakeReservationRepo struct {
	items map[uuid.UUID]*entity.Reservation
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{items: make(map[uuid.UUID]*entity.Reservation)}
}

func (f *fakeReservationRepo) Create(_ context.Context, res *entity.Reservation) error {
	f.items[res.ID] = res
	return nil
}

func (f *fakeReservationRepo) CreateIfAvailable(ctx context.Context, res *entity.Reservation) error {
	active, _ := f.FindActiveByRoomID(ctx, res.RoomID)
	for _, existing := range active {
		if existing.Overlaps(res.CheckInDate, res.CheckOutDate) {
			return repository.ErrOverlappingReservation
		}
	}
	f.items[res.ID] = res
	return nil
}

func (f *fakeReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Reservation, error) {
	return f.items[id], nil
}

func (f *fakeReservationRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Reservation, error) {
	all := f.all()
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (f *fakeReservationRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

func (f *fakeReservationRepo) Update(_ context.Context, res *entity.Reservation) error {
	f.items[res.ID] = res
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

func (f *fakeReservationRepo) FindActive(_ context.Context) ([]*entity.Reservation, error) {
	var out []*entity.Reservation
	for _, res := range f.all() {
		if res.Status.IsActive() {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) FindActiveByRoomID(_ context.Context, roomID uuid.UUID) ([]*entity.Reservation, error) {
	var out []*entity.Reservation
	for _, res := range f.all() {
		if res.RoomID == roomID && res.Status.IsActive() {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) FindByStatus(_ context.Context, status entity.ReservationStatus) ([]*entity.Reservation, error) {
	var out []*entity.Reservation
	for _, res := range f.all() {
		if res.Status == status {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) FindByDateRange(_ context.Context, start, end time.Time) ([]*entity.Reservation, error) {
	var out []*entity.Reservation
	for _, res := range f.all() {
		if between(res.CheckInDate, start, end) || between(res.CheckOutDate, start, end) {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.ReservationStatus) error {
	if res, ok := f.items[id]; ok {
		res.Status = status
		res.UpdatedAt = time.Now()
	}
	return nil
}

func (f *fakeReservationRepo) all() []*entity.Reservation {
	out := make([]*entity.Reservation, 0, len(f.items))
	for _, res := range f.items {
		out = append(out, res)
	}
	return out
}

func between(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

type fakePaymentRepo struct {
	items map[uuid.UUID]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{items: make(map[uuid.UUID]*entity.Payment)}
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	f.items[payment.ID] = payment
	return nil
}

func (f *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Payment, error) {
	return f.items[id], nil
}

func (f *fakePaymentRepo) FindAll(_ context.Context) ([]*entity.Payment, error) {
	out := make([]*entity.Payment, 0, len(f.items))
	for _, payment := range f.items {
		out = append(out, payment)
	}
	return out, nil
}

func (f *fakePaymentRepo) Update(_ context.Context, payment *entity.Payment) error {
	f.items[payment.ID] = payment
	return nil
}

func (f *fakePaymentRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

func (f *fakePaymentRepo) FindByReservationID(_ context.Context, reservationID uuid.UUID) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, payment := range f.items {
		if payment.ReservationID == reservationID {
			out = append(out, payment)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) FindByPaymentDateRange(_ context.Context, start, end time.Time) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, payment := range f.items {
		if between(payment.PaymentDate, start, end) {
			out = append(out, payment)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	if payment, ok := f.items[id]; ok {
		payment.Status = status
		payment.UpdatedAt = time.Now()
	}
	return nil
}

type fakeCustomerRepo struct {
	items map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{items: make(map[uuid.UUID]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *entity.Customer) error {
	f.items[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	return f.items[id], nil
}

func (f *fakeCustomerRepo) FindByEmail(_ context.Context, email string) (*entity.Customer, error) {
	for _, customer := range f.items {
		if customer.Email != nil && *customer.Email == email {
			return customer, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(f.items))
	for _, customer := range f.items {
		out = append(out, customer)
	}
	return out, nil
}

func (f *fakeCustomerRepo) SearchByName(_ context.Context, name string) ([]*entity.Customer, error) {
	return nil, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, customer *entity.Customer) error {
	f.items[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

func (f *fakeCustomerRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

type fakeRoomRepo struct {
	items map[uuid.UUID]*entity.Room
}

func newFakeRoomRepo() *fakeRoomRepo {
	return &fakeRoomRepo{items: make(map[uuid.UUID]*entity.Room)}
}

func (f *fakeRoomRepo) Create(_ context.Context, room *entity.Room) error {
	f.items[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Room, error) {
	return f.items[id], nil
}

func (f *fakeRoomRepo) FindByRoomNumber(_ context.Context, roomNumber string) (*entity.Room, error) {
	for _, room := range f.items {
		if room.RoomNumber == roomNumber {
			return room, nil
		}
	}
	return nil, nil
}

func (f *fakeRoomRepo) FindAll(_ context.Context) ([]*entity.Room, error) {
	out := make([]*entity.Room, 0, len(f.items))
	for _, room := range f.items {
		out = append(out, room)
	}
	return out, nil
}

func (f *fakeRoomRepo) Update(_ context.Context, room *entity.Room) error {
	f.items[room.ID] = room
	return nil
}

func (f *fakeRoomRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

func (f *fakeRoomRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

func (f *fakeRoomRepo) CountByStatus(_ context.Context, status entity.RoomStatus) (int64, error) {
	var count int64
	for _, room := range f.items {
		if room.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeRoomRepo) FindByStatus(_ context.Context, status entity.RoomStatus) ([]*entity.Room, error) {
	var out []*entity.Room
	for _, room := range f.items {
		if room.Status == status {
			out = append(out, room)
		}
	}
	return out, nil
}

func (f *fakeRoomRepo) FindAvailable(ctx context.Context) ([]*entity.Room, error) {
	return f.FindByStatus(ctx, entity.RoomStatusAvailable)
}

func (f *fakeRoomRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.RoomStatus) error {
	if room, ok := f.items[id]; ok {
		room.Status = status
	}
	return nil
}

type fakeActivityRepo struct {
	entries []*entity.ActivityLog
}

func (f *fakeActivityRepo) Create(_ context.Context, entry *entity.ActivityLog) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeActivityRepo) FindRecent(_ context.Context, limit int) ([]*entity.ActivityLog, error) {
	if limit > len(f.entries) {
		limit = len(f.entries)
	}
	return f.entries[:limit], nil
}

func (f *fakeActivityRepo) FindByEntity(_ context.Context, entityType string, entityID uuid.UUID) ([]*entity.ActivityLog, error) {
	var out []*entity.ActivityLog
	for _, entry := range f.entries {
		if entry.EntityType == entityType && entry.EntityID != nil && *entry.EntityID == entityID {
			out = append(out, entry)
		}
	}
	return out, nil
}
