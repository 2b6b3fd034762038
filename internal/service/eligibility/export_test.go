package eligibility

import "time"

// SetTimeFunc overrides the service clock so external tests can pin the
// classifier's year arithmetic.
func (s *Service) SetTimeFunc(f func() time.Time) {
	s.timeFunc = f
}
