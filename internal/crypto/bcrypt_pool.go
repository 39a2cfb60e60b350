// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the password hashing primitives of the server.
package crypto

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"
)

// BcryptPool runs bcrypt on a fixed number of goroutines so that a burst of
// logins cannot occupy every CPU. It implements [PasswordHasher] and the
// workers.Worker contract: nothing is hashed until Run is called.
type BcryptPool struct {
	cost int
	size int
	jobs chan func()
}

// NewBcryptPool creates a pool of size goroutines hashing with cost. A cost
// outside bcrypt's bounds falls back to bcrypt.DefaultCost.
func NewBcryptPool(cost, size int) *BcryptPool {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if size < 1 {
		size = 1
	}

	return &BcryptPool{
		cost: cost,
		size: size,
		jobs: make(chan func()),
	}
}

// Run starts the pool goroutines and blocks until ctx is cancelled.
func (p *BcryptPool) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for range p.size {
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case job := <-p.jobs:
					job()
				}
			}
		})
	}

	return g.Wait()
}

// Hash implements [PasswordHasher].
func (p *BcryptPool) Hash(ctx context.Context, password string) (string, error) {
	var (
		digest []byte
		err    error
	)
	if submitErr := p.submit(ctx, func() {
		digest, err = bcrypt.GenerateFromPassword([]byte(password), p.cost)
	}); submitErr != nil {
		return "", submitErr
	}
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// Compare implements [PasswordHasher].
func (p *BcryptPool) Compare(ctx context.Context, digest, password string) (bool, error) {
	var err error
	if submitErr := p.submit(ctx, func() {
		err = bcrypt.CompareHashAndPassword([]byte(digest), []byte(password))
	}); submitErr != nil {
		return false, submitErr
	}

	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("error comparing password: %w", err)
	}
}

// submit hands fn to a pool goroutine and waits for it to finish. Results
// written by fn are visible to the caller once submit returns nil.
func (p *BcryptPool) submit(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	job := func() {
		defer close(done)
		fn()
	}

	select {
	case p.jobs <- job:
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
