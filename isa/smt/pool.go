// This file is part of isa-symexec.
//
// isa-symexec is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// isa-symexec is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with isa-symexec.  If not, see <https://www.gnu.org/licenses/>.

package smt

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	isactx "github.com/geo2a/isa-symexec/isa/context"
	"github.com/geo2a/isa-symexec/logger"
)

// Pool farms independent per-Context SMT queries out to a bounded set of
// workers, per spec.md §5: "may farm independent SMT queries to a worker
// pool (one job per Context)". Each worker owns its own Driver/Backend -
// solver handles are exclusive to their worker, never shared.
type Pool struct {
	factory BackendFactory
	size    int
	timeout time.Duration
	stats   *Stats
	log     *logger.Logger
	perm    logger.Permission

	mu        sync.Mutex
	allocated int
	drivers   []*Driver
	idle      chan *Driver
}

// NewPool builds a Pool of size workers, each backed by a fresh Backend
// from factory. Workers are created lazily on first use, not eagerly, so
// that a Run over a small tree never pays for idle solver processes.
func NewPool(factory BackendFactory, size int, timeout time.Duration, log *logger.Logger, perm logger.Permission) *Pool {
	if size < 1 {
		size = 1
	}
	return &Pool{factory: factory, size: size, timeout: timeout, stats: &Stats{}, log: log, perm: perm, idle: make(chan *Driver, size)}
}

// Stats returns the Pool's shared SMT-call statistics.
func (p *Pool) Stats() *Stats { return p.stats }

// ProcessAll runs Driver.ProcessContext for every Context in ctxs
// concurrently, bounded to p.size workers via errgroup's SetLimit. The
// first query to return a hard error cancels the group; the caller sees
// that error, not a partially annotated batch.
func (p *Pool) ProcessAll(ctx context.Context, ctxs []*isactx.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.size)

	for _, c := range ctxs {
		c := c
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			driver, err := p.acquire()
			if err != nil {
				return err
			}
			defer p.release(driver)
			return driver.ProcessContext(c)
		})
	}
	return g.Wait()
}

// acquire lazily allocates up to p.size long-lived Drivers and otherwise
// blocks on the idle channel for one a concurrent caller has finished
// with. A Driver is never handed out twice at once: acquire only returns
// one it just created or one release put back, and every caller in
// ProcessAll defers release. Each Driver owns an exclusive Backend
// (backend_z3.go: "not goroutine-safe"; smttest's brute-force backend has
// no locking either), so handing the same Driver to two in-flight callers
// would be a real concurrent-mutation race, not merely slow serialization.
func (p *Pool) acquire() (*Driver, error) {
	select {
	case d := <-p.idle:
		return d, nil
	default:
	}

	p.mu.Lock()
	if p.allocated < p.size {
		backend, err := p.factory()
		if err != nil {
			p.mu.Unlock()
			return nil, err
		}
		d := NewDriver(backend, p.timeout, p.stats, p.log, p.perm)
		p.drivers = append(p.drivers, d)
		p.allocated++
		p.mu.Unlock()
		return d, nil
	}
	p.mu.Unlock()

	// Every Driver is allocated and currently in use; wait for one to be
	// released rather than handing out one that is still mid-query.
	return <-p.idle, nil
}

// release returns d to the idle pool for acquire's next caller.
func (p *Pool) release(d *Driver) {
	p.idle <- d
}

// Close releases every Driver's Backend.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, d := range p.drivers {
		d.Close()
	}
	p.drivers = nil
}
