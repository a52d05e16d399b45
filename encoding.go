package magicset

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}

// WriteTo writes the set as a gob stream: the ordering, the element count and
// then every element in iteration order. Elements are encoded with gob, so
// element types must be gob-encodable.
func (s *HashSet[E]) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	enc := gob.NewEncoder(cw)

	if err := enc.Encode(s.ordering); err != nil {
		return cw.n, errors.Wrap(err, "could not write ordering")
	}

	if err := enc.Encode(s.Len()); err != nil {
		return cw.n, errors.Wrap(err, "could not write size")
	}

	for e := range s.All() {
		if err := enc.Encode(e); err != nil {
			return cw.n, errors.Wrapf(err, "could not write element %s", e.ID())
		}
	}

	return cw.n, nil
}

// ReadFrom replaces the contents and ordering of s with a set written by
// WriteTo. s is left untouched on error. The returned count includes bytes
// buffered by the decoder.
func (s *HashSet[E]) ReadFrom(r io.Reader) (int64, error) {
	cr := &countingReader{r: r}
	dec := gob.NewDecoder(cr)

	var ordering Ordering
	if err := dec.Decode(&ordering); err != nil {
		return cr.n, errors.Wrap(err, "could not read ordering")
	}
	if !ordering.valid() {
		return cr.n, errors.Wrapf(ErrInvalidData, "unknown ordering %d", uint8(ordering))
	}

	var size int
	if err := dec.Decode(&size); err != nil {
		return cr.n, errors.Wrap(err, "could not read size")
	}
	if size < 0 {
		return cr.n, errors.Wrapf(ErrInvalidData, "illegal size: %d", size)
	}

	st := newStore[E](ordering, 0)
	for i := 0; i < size; i++ {
		var e E
		if err := dec.Decode(&e); err != nil {
			return cr.n, errors.Wrapf(err, "could not read element %d of %d", i+1, size)
		}
		if validate(e) != nil {
			return cr.n, errors.Wrapf(ErrInvalidData, "element %d of %d has no identity", i+1, size)
		}
		st.put(e)
	}

	s.ordering = ordering
	s.store = st
	return cr.n, nil
}

func (s *HashSet[E]) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (s *HashSet[E]) GobDecode(data []byte) error {
	_, err := s.ReadFrom(bytes.NewReader(data))
	return err
}

// MarshalJSON renders the elements as an array in iteration order.
func (s *HashSet[E]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Items())
}

// UnmarshalJSON replaces the contents of s with the elements of a JSON array.
// The ordering of s is kept. A JSON null leaves s unchanged.
func (s *HashSet[E]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var items []E
	if err := json.Unmarshal(data, &items); err != nil {
		return errors.Wrap(err, "could not decode magic set")
	}

	st := newStore[E](s.ordering, len(items))
	for i, e := range items {
		if validate(e) != nil {
			return errors.Wrapf(ErrInvalidData, "element %d has no identity", i)
		}
		st.put(e)
	}

	s.store = st
	return nil
}
