package jwt_test

import (
	"time"

	"coinledger/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *jwt.JWTService
		now     time.Time
	)

	BeforeEach(func() {
		now = time.Now()
		jwt.TimeNow = func() time.Time { return now }
		service = jwt.NewJWTService([]byte("secret"))
	})

	AfterEach(func() {
		jwt.TimeNow = time.Now
	})

	It("should round-trip subject and scope", func() {
		token, err := service.Issue(jwt.TokenInfo{Subject: "ops", Scope: "admin", Expiration: time.Hour})
		Expect(err).NotTo(HaveOccurred())

		claims, err := service.Validate(token)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims["sub"]).To(Equal("ops"))
		Expect(claims["scope"]).To(Equal("admin"))
	})

	It("should leave scope out when none is given", func() {
		token, err := service.Issue(jwt.TokenInfo{Subject: "owner1", Expiration: time.Hour})
		Expect(err).NotTo(HaveOccurred())

		claims, err := service.Validate(token)
		Expect(err).NotTo(HaveOccurred())
		Expect(claims).NotTo(HaveKey("scope"))
	})

	It("should reject tokens signed with another secret", func() {
		token, err := jwt.NewJWTService([]byte("other")).Issue(jwt.TokenInfo{Subject: "x", Expiration: time.Hour})
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(token)
		Expect(err).To(MatchError(jwt.ErrTokenNotValid))
	})

	It("should reject expired tokens", func() {
		token, err := service.Issue(jwt.TokenInfo{Subject: "x", Expiration: -time.Minute})
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(token)
		Expect(err).To(MatchError(jwt.ErrTokenExpired))
	})

	It("should reject tokens without a subject", func() {
		token, err := service.Issue(jwt.TokenInfo{Expiration: time.Hour})
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(token)
		Expect(err).To(MatchError(jwt.ErrTokenNotValid))
	})

	It("should reject garbage", func() {
		_, err := service.Validate("not-a-token")
		Expect(err).To(MatchError(jwt.ErrTokenNotValid))
	})
})
