// Package memory is an in-process implementation of every repository.
//
// All repositories of one Store share a single mutex, so the multi-record
// writes (signature completion, OTP create/consume, schedules) are atomic
// exactly like their DynamoDB transactions.
package memory

import (
	"sync"

	"doctrust/internal/domain/entities"
)

type Store struct {
	mu sync.Mutex

	documents map[string]entities.Document
	accounts  map[string]entities.AccountSettings
	tokens    map[string]entities.Token

	sessions   map[string]entities.SignatureSession
	challenges map[string]entities.OTPChallenge
	live       map[string]string
	events     map[string][]entities.SignatureEvent
	seqs       map[string]int64

	payments map[string]entities.Payment
	charges  map[string]string

	installments map[string]entities.Installment
	schedules    map[string][]string
}

func NewStore() *Store {
	return &Store{
		documents:    map[string]entities.Document{},
		accounts:     map[string]entities.AccountSettings{},
		tokens:       map[string]entities.Token{},
		sessions:     map[string]entities.SignatureSession{},
		challenges:   map[string]entities.OTPChallenge{},
		live:         map[string]string{},
		events:       map[string][]entities.SignatureEvent{},
		seqs:         map[string]int64{},
		payments:     map[string]entities.Payment{},
		charges:      map[string]string{},
		installments: map[string]entities.Installment{},
		schedules:    map[string][]string{},
	}
}

func (s *Store) Documents() *DocumentRepository { return &DocumentRepository{s: s} }

func (s *Store) Accounts() *AccountSettingsRepository { return &AccountSettingsRepository{s: s} }

func (s *Store) Tokens() *TokenRepository { return &TokenRepository{s: s} }

func (s *Store) Sessions() *SignatureSessionRepository { return &SignatureSessionRepository{s: s} }

func (s *Store) Challenges() *OTPChallengeRepository { return &OTPChallengeRepository{s: s} }

func (s *Store) Events() *SignatureEventRepository { return &SignatureEventRepository{s: s} }

func (s *Store) Payments() *PaymentRepository { return &PaymentRepository{s: s} }

func (s *Store) Installments() *InstallmentRepository { return &InstallmentRepository{s: s} }

// appendEvent must be called with mu held.
func (s *Store) appendEvent(e entities.SignatureEvent) {
	s.events[e.DocumentID] = append(s.events[e.DocumentID], e)
	if e.Seq > s.seqs[e.DocumentID] {
		s.seqs[e.DocumentID] = e.Seq
	}
}

func copyDocument(d entities.Document) entities.Document {
	if d.Signature != nil {
		sig := *d.Signature
		d.Signature = &sig
	}
	return d
}
