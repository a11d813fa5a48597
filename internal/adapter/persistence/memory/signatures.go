package memory

import (
	"context"
	"time"

	"doctrust/internal/domain/entities"
	"doctrust/internal/usecase/interfaces"
)

type SignatureSessionRepository struct{ s *Store }

var _ interfaces.ISignatureSessionRepository = (*SignatureSessionRepository)(nil)

func (r *SignatureSessionRepository) Create(_ context.Context, ss entities.SignatureSession) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.sessions[ss.ID]; ok {
		return interfaces.ErrConditionFailed
	}
	for _, other := range r.s.sessions {
		if other.DocumentID == ss.DocumentID && other.IsFor(ss.SignerEmail) && other.IsLive(ss.CreatedAt) {
			return interfaces.ErrConditionFailed
		}
	}
	r.s.sessions[ss.ID] = ss
	return nil
}

func (r *SignatureSessionRepository) GetByID(_ context.Context, id string) (entities.SignatureSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.sessions[id], nil
}

func (r *SignatureSessionRepository) ListByDocumentID(_ context.Context, documentID string) ([]entities.SignatureSession, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.SignatureSession, 0)
	for _, ss := range r.s.sessions {
		if ss.DocumentID == documentID {
			out = append(out, ss)
		}
	}
	return out, nil
}

func (r *SignatureSessionRepository) UpdateStatus(_ context.Context, id string, from, to entities.SignatureSessionStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ss, ok := r.s.sessions[id]
	if !ok || ss.Status != from {
		return interfaces.ErrConditionFailed
	}
	ss.Status = to
	r.s.sessions[id] = ss
	return nil
}

func (r *SignatureSessionRepository) Complete(_ context.Context, c interfaces.SignatureCompletion) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ss, ok := r.s.sessions[c.SessionID]
	if !ok || ss.Status != entities.SignatureSessionPending {
		return interfaces.ErrConditionFailed
	}
	d, ok := r.s.documents[c.DocumentID]
	if !ok || d.Status != c.DocumentFrom {
		return interfaces.ErrConditionFailed
	}

	ss.Status = entities.SignatureSessionCompleted
	r.s.sessions[ss.ID] = ss
	sig := c.Signature
	d.Status = entities.DocumentStatusSigned
	d.Signature = &sig
	d.UpdatedAt = c.Signature.SignedAt
	r.s.documents[d.ID] = d
	r.s.appendEvent(c.Event)
	return nil
}

type OTPChallengeRepository struct{ s *Store }

var _ interfaces.IOTPChallengeRepository = (*OTPChallengeRepository)(nil)

func (r *OTPChallengeRepository) Create(_ context.Context, c entities.OTPChallenge, sent entities.SignatureEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.challenges[c.ID]; ok {
		return interfaces.ErrConditionFailed
	}
	r.s.challenges[c.ID] = c
	r.s.live[c.SessionToken] = c.ID
	r.s.appendEvent(sent)
	return nil
}

func (r *OTPChallengeRepository) GetLive(_ context.Context, sessionToken string) (entities.OTPChallenge, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	id, ok := r.s.live[sessionToken]
	if !ok {
		return entities.OTPChallenge{}, nil
	}
	return r.s.challenges[id], nil
}

func (r *OTPChallengeRepository) ReserveAttempt(_ context.Context, id string, max int) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.challenges[id]
	if !ok || c.Consumed || c.Attempts >= max {
		return 0, interfaces.ErrConditionFailed
	}
	c.Attempts++
	r.s.challenges[id] = c
	return c.Attempts, nil
}

func (r *OTPChallengeRepository) Consume(_ context.Context, id string, at time.Time, verified entities.SignatureEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.challenges[id]
	if !ok || c.Consumed {
		return interfaces.ErrConditionFailed
	}
	c.Consumed = true
	c.ConsumedAt = &at
	r.s.challenges[id] = c
	r.s.appendEvent(verified)
	return nil
}

type SignatureEventRepository struct{ s *Store }

var _ interfaces.ISignatureEventRepository = (*SignatureEventRepository)(nil)

func (r *SignatureEventRepository) NextSeq(_ context.Context, documentID string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.seqs[documentID]++
	return r.s.seqs[documentID], nil
}

func (r *SignatureEventRepository) Append(_ context.Context, e entities.SignatureEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.events[e.DocumentID] {
		if existing.Seq == e.Seq {
			return interfaces.ErrConditionFailed
		}
	}
	r.s.appendEvent(e)
	return nil
}

func (r *SignatureEventRepository) ListByDocumentID(_ context.Context, documentID string) ([]entities.SignatureEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	src := r.s.events[documentID]
	out := make([]entities.SignatureEvent, len(src))
	copy(out, src)
	return out, nil
}
