package get_available_slots

import "github.com/m04kA/glowbook-gateway/internal/domain"

// collectBookedTimes собирает занятые значения слотов (HH:MM) на дату date
//
// Бронирования клиента блокируют слот в любом статусе, кроме cancelled/rejected/expired.
// Бронирования косметолога блокируют слот только в статусах approved/completed.
// Записи с некорректной датой или временем пропускаются и ничего не блокируют.
func collectBookedTimes(date string, actorBookings, resourceBookings []*domain.Booking) map[string]struct{} {
	booked := make(map[string]struct{})

	for _, b := range actorBookings {
		if b == nil || !b.BlocksActor() {
			continue
		}
		addIfOnDate(booked, b, date)
	}

	for _, b := range resourceBookings {
		if b == nil || !b.BlocksResource() {
			continue
		}
		addIfOnDate(booked, b, date)
	}

	return booked
}

func addIfOnDate(booked map[string]struct{}, b *domain.Booking, date string) {
	if !b.IsOn(date) {
		return
	}
	value, ok := b.SlotValue()
	if !ok {
		return
	}
	booked[value] = struct{}{}
}
