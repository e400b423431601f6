package moveset

import (
	"context"
	"encoding/json"
	"fmt"

	domain "movegraph/internal/domain/moveset"
	errs "movegraph/internal/errors"
	"movegraph/internal/utils"
)

type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Location() string
}

type Importer interface {
	Import(ctx context.Context, doc []byte) error
	Location() string
}

type MovesetUseCase struct {
	store Store
}

func NewMovesetUseCase(store Store) *MovesetUseCase {
	return &MovesetUseCase{store: store}
}

func (m *MovesetUseCase) Location() string {
	return m.store.Location()
}

// GetDocument returns the stored document parsed but otherwise untouched:
// unknown fields survive and nothing is validated.
func (m *MovesetUseCase) GetDocument(ctx context.Context) (any, error) {
	data, err := m.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := utils.DecodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errs.ErrMalformedMoveset, m.store.Location(), err)
	}
	return doc, nil
}

func (m *MovesetUseCase) GetMoveset(ctx context.Context) (domain.Moveset, error) {
	return m.loadMoveset(ctx, false)
}

// loadMoveset decodes the document into typed nodes. In strict mode a node
// carrying a key MoveNode does not define is rejected.
func (m *MovesetUseCase) loadMoveset(ctx context.Context, strict bool) (domain.Moveset, error) {
	data, err := m.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	var set domain.Moveset
	if strict {
		err = utils.DecodeStrict(data, &set)
	} else {
		err = json.Unmarshal(data, &set)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", errs.ErrMalformedMoveset, m.store.Location(), err)
	}
	return set, nil
}

type Report struct {
	Moves    int
	Edges    int
	Problems []domain.Problem
}

func (m *MovesetUseCase) Check(ctx context.Context, strict bool) (*Report, error) {
	set, err := m.loadMoveset(ctx, strict)
	if err != nil {
		return nil, err
	}
	return &Report{
		Moves:    len(set),
		Edges:    len(set.Edges()),
		Problems: set.Problems(),
	}, nil
}

// CopyTo pushes the current document into dst after checking it parses.
func (m *MovesetUseCase) CopyTo(ctx context.Context, dst Importer) error {
	data, err := m.store.Load(ctx)
	if err != nil {
		return err
	}
	if _, err := utils.DecodeDocument(data); err != nil {
		return fmt.Errorf("%w: %s: %v", errs.ErrMalformedMoveset, m.store.Location(), err)
	}
	return dst.Import(ctx, data)
}
