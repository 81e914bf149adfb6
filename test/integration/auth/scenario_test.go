// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

//go:build integration

package auth_test

import (
	"fmt"
	"sync"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention
	"golang.org/x/sync/errgroup"

	"github.com/holomush/holoauth/internal/auth"
)

var _ = Describe("Register, login and authenticate", func() {
	var env *testEnv

	BeforeEach(func() {
		env = newTestEnv()
	})

	Describe("a single user's lifecycle", func() {
		It("walks alice through every outcome", func() {
			alice, err := env.service.Register("alice", "secret")
			Expect(err).NotTo(HaveOccurred())
			Expect(alice.Username).To(Equal("alice"))
			Expect(alice.PasswordHash).NotTo(ContainSubstring("secret"))

			_, err = env.service.Register("alice", "other")
			Expect(err).To(MatchError(auth.ErrUserAlreadyExists))
			Expect(auth.ErrorCode(err)).To(Equal(auth.CodeUserAlreadyExists))

			_, err = env.service.Login("alice", "wrong")
			Expect(err).To(MatchError(auth.ErrInvalidCredentials))

			token, err := env.service.Login("alice", "secret")
			Expect(err).NotTo(HaveOccurred())
			Expect(token).NotTo(BeEmpty())

			user, ok := env.service.Authenticate(token)
			Expect(ok).To(BeTrue())
			Expect(user.ID).To(Equal(alice.ID))
			Expect(user.Username).To(Equal("alice"))

			_, ok = env.service.Authenticate("garbage")
			Expect(ok).To(BeFalse())
		})
	})

	Describe("login failures", func() {
		BeforeEach(func() {
			_, err := env.service.Register("bob", "hunter2")
			Expect(err).NotTo(HaveOccurred())
		})

		It("reports unknown users and wrong passwords identically", func() {
			_, unknownErr := env.service.Login("nobody", "hunter2")
			_, wrongErr := env.service.Login("bob", "hunter3")

			Expect(unknownErr).To(HaveOccurred())
			Expect(wrongErr).To(HaveOccurred())
			Expect(unknownErr.Error()).To(Equal(wrongErr.Error()))
			Expect(auth.ErrorCode(unknownErr)).To(Equal(auth.ErrorCode(wrongErr)))
		})

		It("issues no token on failure", func() {
			_, _ = env.service.Login("bob", "nope")
			Expect(env.tokens.Len()).To(Equal(0))
		})

		It("surfaces a corrupted stored hash as malformed", func() {
			stored, ok := env.users.FindByUsername("bob")
			Expect(ok).To(BeTrue())
			stored.PasswordHash = "not-a-hash"
			env.users.Update(stored)

			_, err := env.service.Login("bob", "hunter2")
			Expect(err).To(MatchError(auth.ErrMalformedHash))
		})
	})

	Describe("repeated logins", func() {
		It("keeps every issued token valid", func() {
			_, err := env.service.Register("carol", "pw")
			Expect(err).NotTo(HaveOccurred())

			first, err := env.service.Login("carol", "pw")
			Expect(err).NotTo(HaveOccurred())
			second, err := env.service.Login("carol", "pw")
			Expect(err).NotTo(HaveOccurred())
			Expect(first).NotTo(Equal(second))

			for _, tok := range []string{first, second} {
				user, ok := env.service.Authenticate(tok)
				Expect(ok).To(BeTrue())
				Expect(user.Username).To(Equal("carol"))
			}
		})
	})

	Describe("concurrent registration", func() {
		It("lets exactly one caller claim a username", func() {
			const callers = 16
			var (
				mu        sync.Mutex
				successes int
				conflicts int
			)

			var g errgroup.Group
			for i := range callers {
				g.Go(func() error {
					_, err := env.service.Register("dave", fmt.Sprintf("pw-%d", i))
					mu.Lock()
					defer mu.Unlock()
					switch auth.ErrorCode(err) {
					case "":
						successes++
					case auth.CodeUserAlreadyExists:
						conflicts++
					default:
						return err
					}
					return nil
				})
			}
			Expect(g.Wait()).To(Succeed())

			Expect(successes).To(Equal(1))
			Expect(conflicts).To(Equal(callers - 1))
			Expect(env.users.Len()).To(Equal(1))
		})

		It("registers distinct usernames independently", func() {
			var g errgroup.Group
			for i := range 8 {
				g.Go(func() error {
					_, err := env.service.Register(fmt.Sprintf("user-%d", i), "pw")
					return err
				})
			}
			Expect(g.Wait()).To(Succeed())
			Expect(env.users.Len()).To(Equal(8))
		})
	})
})
