package audit

import (
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

// DefaultSubjectPrefix is the subject tree events publish under:
// <prefix>.<event type>, e.g. dao.events.proposal_created.
const DefaultSubjectPrefix = "dao.events"

// NATSSink publishes every audit event to NATS so external indexers and UIs
// can follow the treasury without polling state.
type NATSSink struct {
	nc     *nats.Conn
	prefix string
}

// NewNATSSink wraps an established connection. The connection's lifecycle
// stays with the caller.
func NewNATSSink(nc *nats.Conn, prefix string) *NATSSink {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &NATSSink{nc: nc, prefix: prefix}
}

// Append publishes the event as JSON on its type subject.
func (s *NATSSink) Append(ev Event) error {
	data, err := ev.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "marshal audit event")
	}
	subject := s.prefix + "." + ev.Type
	if err := s.nc.Publish(subject, data); err != nil {
		return errors.Wrapf(err, "publish audit event to %s", subject)
	}
	return nil
}
