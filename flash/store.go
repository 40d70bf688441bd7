package flash

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/pkg/errors"

	"github.com/sargassum-world/turboresponse/marshaling"
)

const sessionKey = "messages"

// Store keeps flash messages in a cookie session until they're drained into a
// response. The zero Marshaler means MessagePack.
type Store struct {
	Config       Config
	BackingStore sessions.Store
	Marshaler    marshaling.Marshaler
}

func (s *Store) marshaler() marshaling.Marshaler {
	if s.Marshaler == nil {
		return marshaling.MessagePack{}
	}
	return s.Marshaler
}

func (s *Store) session(r *http.Request) (*sessions.Session, error) {
	sess, err := s.BackingStore.Get(r, s.Config.CookieName)
	return sess, errors.Wrap(err, "couldn't get flash session from request")
}

// Add appends a message to the session, saving it for a later drain.
func (s *Store) Add(w http.ResponseWriter, r *http.Request, message Message) error {
	sess, err := s.session(r)
	if err != nil {
		return err
	}
	messages, err := s.decode(sess)
	if err != nil {
		return err
	}

	encoded, err := s.marshaler().Marshal(append(messages, message))
	if err != nil {
		return errors.Wrap(err, "couldn't encode flash messages")
	}
	sess.Values[sessionKey] = encoded
	return errors.Wrap(sess.Save(r, w), "couldn't save flash session")
}

// Drain removes and returns all stored messages, so each message is delivered
// at most once.
func (s *Store) Drain(w http.ResponseWriter, r *http.Request) ([]Message, error) {
	sess, err := s.session(r)
	if err != nil {
		return nil, err
	}
	messages, err := s.decode(sess)
	if err != nil {
		return nil, err
	}
	if len(messages) == 0 {
		return nil, nil
	}

	delete(sess.Values, sessionKey)
	if err := sess.Save(r, w); err != nil {
		return nil, errors.Wrap(err, "couldn't save drained flash session")
	}
	return messages, nil
}

func (s *Store) decode(sess *sessions.Session) ([]Message, error) {
	raw, ok := sess.Values[sessionKey]
	if !ok {
		return nil, nil
	}
	encoded, ok := raw.([]byte)
	if !ok {
		return nil, errors.Errorf("flash session holds unexpected type %T", raw)
	}

	var messages []Message
	if err := s.marshaler().Unmarshal(encoded, &messages); err != nil {
		return nil, errors.Wrap(err, "couldn't decode flash messages")
	}
	return messages, nil
}
