package portfolio

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

var (
	ErrOutsideScope = errors.New("portfolio facade used outside provisioned scope")
	// ErrRemote marks failures of a remote repository call.
	ErrRemote = errors.New("remote store request failed")
)

// Facade is the single entry point request handlers use to reach the
// collections. It only exists after Provision has loaded the repository.
type Facade struct {
	repo Repository
}

// Provision loads repo and returns the facade over it.
func Provision(ctx context.Context, repo Repository) (*Facade, error) {
	if repo == nil {
		return nil, errors.New("portfolio: nil repository")
	}
	if err := repo.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load portfolio: %w", err)
	}
	return &Facade{repo: repo}, nil
}

func (f *Facade) Projects() Projects       { return f.repo.Projects() }
func (f *Facade) Skills() Skills           { return f.repo.Skills() }
func (f *Facade) Experiences() Experiences { return f.repo.Experiences() }
func (f *Facade) Messages() Messages       { return f.repo.Messages() }
func (f *Facade) Categories() Categories   { return f.repo.Categories() }

type facadeKey struct{}

// Scope returns a context under which Access yields f.
func (f *Facade) Scope(ctx context.Context) context.Context {
	return context.WithValue(ctx, facadeKey{}, f)
}

// Middleware scopes every request handled below it.
func (f *Facade) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(f.Scope(c.Request.Context()))
		c.Next()
	}
}

// Access returns the facade scoped on ctx, or ErrOutsideScope.
func Access(ctx context.Context) (*Facade, error) {
	if ctx != nil {
		if f, ok := ctx.Value(facadeKey{}).(*Facade); ok && f != nil {
			return f, nil
		}
	}
	return nil, ErrOutsideScope
}

// MustAccess is Access for code paths where a missing scope is a bug.
func MustAccess(ctx context.Context) *Facade {
	f, err := Access(ctx)
	if err != nil {
		panic(err)
	}
	return f
}
