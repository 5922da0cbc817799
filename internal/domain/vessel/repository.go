package vessel

import "context"

// Repository defines the interface for fleet storage, keyed by IMO.
type Repository interface {
	Create(ctx context.Context, v *Vessel) error
	GetByIMO(ctx context.Context, imo string) (*Vessel, error)
	Update(ctx context.Context, v *Vessel) error
	List(ctx context.Context) ([]*Vessel, error)
}
