package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"
)

// Window is how long an issued code stays valid.
const Window = 10 * time.Minute

var (
	ErrNoPending = errors.New("no pending code")
	ErrMismatch  = errors.New("otp does not match")
	ErrExpired   = errors.New("otp expired")
)

type record struct {
	code     string
	issuedAt time.Time
}

// Store keeps one live passcode per recipient in process memory.
// Nothing survives a restart; re-requesting a code is the recovery
// path. The single mutex covers the whole read-check-delete sequence
// in Validate so a code can never be consumed twice.
type Store struct {
	mu      sync.Mutex
	records map[string]record
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{
		records: make(map[string]record),
		now:     time.Now,
	}
}

/*
* Generate a random 6-digit code for the recipient
* Overwrite whatever code was pending before
* Return the code so the caller can deliver it out-of-band
 */
func (s *Store) Issue(recipient string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[recipient] = record{code: code, issuedAt: s.now()}
	return code, nil
}

/*
* No record -> ErrNoPending
* Past the window -> drop the record, ErrExpired
* Wrong code -> keep the record so the caller can retry, ErrMismatch
* Right code -> drop the record, success (a code validates at most once)
 */
func (s *Store) Validate(recipient string, submitted string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[recipient]
	if !ok {
		return ErrNoPending
	}
	if s.now().Sub(rec.issuedAt) > Window {
		delete(s.records, recipient)
		return ErrExpired
	}
	if rec.code != submitted {
		return ErrMismatch
	}
	delete(s.records, recipient)
	return nil
}

// Drop removes any pending code for the recipient. Used to roll back
// an issue whose delivery failed.
func (s *Store) Drop(recipient string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, recipient)
}

// SweepExpired clears records past the window and reports how many
// were removed.
func (s *Store) SweepExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for recipient, rec := range s.records {
		if s.now().Sub(rec.issuedAt) > Window {
			delete(s.records, recipient)
			removed++
		}
	}
	return removed
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
