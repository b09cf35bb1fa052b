package data_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/volcanolab/wws/data"
)

var _ = Describe("ParseChannel", func() {
	It("parses a plain menu line", func() {
		channel, err := data.ParseChannel("17 AUGL$EHZ$AV$-- 100.500000 2000.250000")
		Expect(err).To(Succeed())
		Expect(channel.SID).To(Equal(17))
		Expect(channel.Scnl.Station).To(Equal("AUGL"))
		Expect(channel.Scnl.Location).To(Equal("--"))
		Expect(channel.MinTime).To(Equal(100.5))
		Expect(channel.MaxTime).To(Equal(2000.25))
		Expect(channel.Metadata).To(BeEmpty())
	})

	It("keeps trailing metadata verbatim", func() {
		channel, err := data.ParseChannel("17 AUGL$EHZ$AV$-- 0 1 Augustine Volcano, AK")
		Expect(err).To(Succeed())
		Expect(channel.Metadata).To(Equal("Augustine Volcano, AK"))
	})

	It("rejects short lines", func() {
		_, err := data.ParseChannel("17 AUGL$EHZ$AV$--")
		Expect(err).To(MatchError(data.ErrBadMenuLine))
	})

	It("rejects a non-numeric sid", func() {
		_, err := data.ParseChannel("x AUGL$EHZ$AV$-- 0 1")
		Expect(err).To(MatchError(data.ErrBadMenuLine))
	})

	It("round trips through String", func() {
		line := "17 AUGL$EHZ$AV$-- 100.500000 2000.250000"
		channel, err := data.ParseChannel(line)
		Expect(err).To(Succeed())
		Expect(channel.String()).To(Equal(line))
	})
})
