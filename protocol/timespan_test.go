package protocol_test

import (
	"time"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/volcanolab/wws/protocol"
)

var _ = Describe("J2kSec conversion", func() {
	It("places the epoch at 2000-01-01T12:00:00Z", func() {
		epoch := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
		Expect(protocol.J2kFromTime(epoch)).To(Equal(0.0))
		Expect(protocol.TimeFromJ2k(0)).To(BeTemporally("==", epoch))
	})

	It("round trips within a microsecond", func() {
		t := time.Date(2021, 7, 4, 3, 2, 1, 250e6, time.UTC)
		back := protocol.TimeFromJ2k(protocol.J2kFromTime(t))
		Expect(back.Sub(t)).To(BeNumerically("<", time.Microsecond))
		Expect(t.Sub(back)).To(BeNumerically("<", time.Microsecond))
	})
})

var _ = Describe("NewTimeSpan", func() {
	It("keeps ordered bounds as given", func() {
		start := protocol.TimeFromJ2k(0)
		end := protocol.TimeFromJ2k(10)
		span := protocol.NewTimeSpan(start, end)
		Expect(span.Start).To(Equal(start))
		Expect(span.End).To(Equal(end))
	})

	It("swaps reversed bounds", func() {
		start := protocol.TimeFromJ2k(10)
		end := protocol.TimeFromJ2k(0)
		span := protocol.NewTimeSpan(start, end)
		Expect(span.Start).To(Equal(end))
		Expect(span.End).To(Equal(start))
	})
})
