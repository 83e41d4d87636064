// Package timeprovider отделяет источник текущего времени от бизнес-логики,
// позволяя подменять часы в тестах
package timeprovider

import "time"

// RealTimeProvider возвращает системное время в UTC
type RealTimeProvider struct{}

func New() *RealTimeProvider {
	return &RealTimeProvider{}
}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
