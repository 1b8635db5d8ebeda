// Package updatesource parses the textual update-stream encoding spec.md
// §6 describes (one `+`/`-` record per line) into an ordered sequence of
// insertion/deletion records, and precomputes the node-count upper bound
// (which the approximate engine's constructor takes) and the maximum node
// degree (exposed via MaxDegree; no engine reads it). Grounded on the original source's GraphScheduler: a
// single load pass that builds the full update vector up front, then hands
// records out one at a time via HasNext/Next.
package updatesource

import (
	"bufio"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/hypercore/hypergraph"
)

// UpdateType distinguishes an insertion record from a deletion record.
type UpdateType int

const (
	Insert UpdateType = iota
	Delete
)

// Record is one parsed update-stream entry. Timestamp is reserved per
// spec.md §6 ("auxiliary timestamp ... not consumed by the core") and is
// only meaningful for Insert records; it is zero for Delete.
type Record struct {
	Type      UpdateType
	Edge      hypergraph.Hyperedge
	Timestamp int
}

// Source is a finite, ordered sequence of update records plus node-count
// and max-degree statistics computed during a single pass over the
// insertions. threshold.New takes the node count; the max degree is not
// passed to any engine.
type Source struct {
	records       []Record
	position      int
	numberOfNodes uint32
	maxDegree     uint32
}

// Load parses r's entire contents into a Source. It fails fast on the
// first malformed line: unrecognized prefix, too few tokens, a
// non-numeric token, or an unsorted deletion.
func Load(r io.Reader) (*Source, error) {
	s := &Source{}
	deg := make(map[hypergraph.Node]uint32)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rec, err := parseLine(line)
		if err != nil {
			return nil, err
		}
		if rec.Type == Insert {
			for _, u := range rec.Edge {
				deg[u]++
				if deg[u] > s.maxDegree {
					s.maxDegree = deg[u]
				}
			}
		}
		s.records = append(s.records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	s.numberOfNodes = uint32(len(deg))
	return s, nil
}

func parseLine(line string) (Record, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return Record{}, ErrMalformedRecord
	}

	var typ UpdateType
	switch fields[0] {
	case "+":
		typ = Insert
	case "-":
		typ = Delete
	default:
		return Record{}, ErrMalformedRecord
	}

	nums := make([]int64, len(fields)-1)
	for i, tok := range fields[1:] {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil || v < 0 {
			return Record{}, ErrMalformedRecord
		}
		nums[i] = v
	}

	rec := Record{Type: typ}
	if typ == Insert {
		rec.Timestamp = int(nums[len(nums)-1])
		nums = nums[:len(nums)-1]
	}
	if len(nums) < 2 {
		return Record{}, ErrMalformedRecord
	}

	edge := make(hypergraph.Hyperedge, len(nums))
	for i, v := range nums {
		edge[i] = hypergraph.Node(v)
	}

	if typ == Insert {
		sort.Slice(edge, func(i, j int) bool { return edge[i] < edge[j] })
	} else {
		for i := 1; i < len(edge); i++ {
			if edge[i-1] > edge[i] {
				return Record{}, ErrUnsortedDeletion
			}
		}
	}
	rec.Edge = edge
	return rec, nil
}

// HasNext reports whether Next has more records to return.
func (s *Source) HasNext() bool { return s.position < len(s.records) }

// Next returns the next record in the stream and advances the cursor.
func (s *Source) Next() Record {
	rec := s.records[s.position]
	s.position++
	return rec
}

// Reset rewinds the cursor to the beginning of the stream without
// re-parsing, useful for replaying the same trace through multiple engines
// in a single test or CLI invocation.
func (s *Source) Reset() { s.position = 0 }

// Len returns the total number of records in the stream.
func (s *Source) Len() int { return len(s.records) }

// NumberOfNodes returns the number of distinct node IDs appearing across
// every insertion in the trace.
func (s *Source) NumberOfNodes() uint32 { return s.numberOfNodes }

// MaxDegree returns the maximum node degree observed over the full trace.
func (s *Source) MaxDegree() uint32 { return s.maxDegree }
