package guard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/go-biz-admin/internal/logger"
)

// DefaultMaxRedirects bounds the redirects followed by one Dispatch.
const DefaultMaxRedirects = 4

var (
	ErrRouteNotFound    = errors.New("unknown command")
	ErrTooManyRedirects = errors.New("too many redirects")
)

// Router resolves command paths to handlers.
type Router struct {
	routes       map[string]Handler
	maxRedirects int

	logger *logger.Logger
}

func NewRouter(logger *logger.Logger) *Router {
	return &Router{
		routes:       make(map[string]Handler),
		maxRedirects: DefaultMaxRedirects,
		logger:       logger,
	}
}

// Handle registers h under path. Repeated spaces in path are ignored.
func (r *Router) Handle(path string, h Handler) {
	r.routes[normalizePath(path)] = h
}

// Routes returns the registered paths in lexical order.
func (r *Router) Routes() []string {
	paths := make([]string, 0, len(r.routes))
	for p := range r.routes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Dispatch runs the route matching the longest prefix of args and follows
// the redirects it returns. When a redirect leads back to the route that
// was originally requested, that route runs again with its original
// arguments.
func (r *Router) Dispatch(ctx context.Context, args []string) error {
	path, rest, err := r.resolve(args)
	if err != nil {
		return err
	}

	origin, originArgs := path, rest
	from := ""

	for hop := 0; ; hop++ {
		if hop > r.maxRedirects {
			return fmt.Errorf("%w: stopped at %q", ErrTooManyRedirects, path)
		}

		routeCtx := context.WithValue(ctx, routeCtxKey, path)
		if from != "" {
			routeCtx = context.WithValue(routeCtx, redirectCtxKey, from)
		}

		err = r.routes[path](routeCtx, rest)

		var redirect *RedirectError
		if !errors.As(err, &redirect) {
			return err
		}

		r.logger.Debug().Str("func", "*Router.Dispatch").Str("from", path).Str("to", redirect.To).Msg("redirect")

		target := normalizePath(redirect.To)
		if _, ok := r.routes[target]; !ok {
			return fmt.Errorf("%w: redirect target %q", ErrRouteNotFound, redirect.To)
		}

		from = path
		path, rest = target, nil
		if target == origin {
			rest = originArgs
		}
	}
}

// resolve finds the longest registered path that prefixes args.
func (r *Router) resolve(args []string) (string, []string, error) {
	for n := len(args); n > 0; n-- {
		candidate := normalizePath(strings.Join(args[:n], " "))
		if _, ok := r.routes[candidate]; ok {
			return candidate, args[n:], nil
		}
	}
	return "", nil, fmt.Errorf("%w: %q", ErrRouteNotFound, strings.Join(args, " "))
}

func normalizePath(path string) string {
	return strings.Join(strings.Fields(path), " ")
}
