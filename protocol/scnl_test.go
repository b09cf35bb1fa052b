package protocol_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/volcanolab/wws/protocol"
)

var _ = Describe("Scnl", func() {
	Describe("ParseScnl", func() {
		It("parses the dotted command line form", func() {
			scnl, err := protocol.ParseScnl("AUGL.EHZ.AV.01")
			Expect(err).To(Succeed())
			Expect(scnl).To(Equal(protocol.Scnl{
				Station: "AUGL", Component: "EHZ", Network: "AV", Location: "01",
			}))
		})

		It("defaults a missing location to the wildcard marker", func() {
			scnl, err := protocol.ParseScnl("AUGL.EHZ.AV")
			Expect(err).To(Succeed())
			Expect(scnl.Location).To(Equal(protocol.WildcardLocation))
		})

		It("parses the $-separated menu form", func() {
			scnl, err := protocol.ParseScnl("AUGL$EHZ$AV$--")
			Expect(err).To(Succeed())
			Expect(scnl.Station).To(Equal("AUGL"))
			Expect(scnl.Location).To(Equal("--"))
		})

		It("rejects too few or too many parts", func() {
			_, err := protocol.ParseScnl("AUGL.EHZ")
			Expect(err).To(MatchError(protocol.ErrBadScnl))

			_, err = protocol.ParseScnl("A.B.C.D.E")
			Expect(err).To(MatchError(protocol.ErrBadScnl))
		})

		It("rejects empty parts", func() {
			_, err := protocol.ParseScnl("AUGL..AV")
			Expect(err).To(MatchError(protocol.ErrBadScnl))
		})
	})

	Describe("String", func() {
		It("joins all four codes with the given separator", func() {
			scnl := protocol.NewScnl("AUGL", "EHZ", "AV", "01")
			Expect(scnl.String(" ")).To(Equal("AUGL EHZ AV 01"))
			Expect(scnl.String("$")).To(Equal("AUGL$EHZ$AV$01"))
		})

		It("renders an empty location as the wildcard marker", func() {
			scnl := protocol.Scnl{Station: "AUGL", Component: "EHZ", Network: "AV"}
			Expect(scnl.String(" ")).To(Equal("AUGL EHZ AV --"))
		})
	})
})
