package handler_test

import (
	"bytes"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/volcanolab/wws/data"
	"github.com/volcanolab/wws/handler"
	"github.com/volcanolab/wws/internal/winstontest"
	"github.com/volcanolab/wws/protocol"
)

var _ = Describe("Version", func() {
	It("parses the version line even split across chunks", func() {
		var version int
		done, err := feedChunked(handler.NewVersion(&version), winstontest.VersionResponse(4), 3)
		Expect(err).To(Succeed())
		Expect(done).To(BeTrue())
		Expect(version).To(Equal(4))
	})

	It("stays pending until the newline arrives", func() {
		var version int
		h := handler.NewVersion(&version)

		done, err := h.Accept([]byte("PROTOCOL_VERSION: 4"))
		Expect(err).To(Succeed())
		Expect(done).To(BeFalse())

		done, err = h.Accept([]byte("\n"))
		Expect(err).To(Succeed())
		Expect(done).To(BeTrue())
		Expect(version).To(Equal(4))
	})

	It("fails on a non-numeric version", func() {
		var version int
		_, err := handler.NewVersion(&version).Accept([]byte("PROTOCOL_VERSION: x\n"))
		Expect(err).To(MatchError(protocol.ErrBadHeader))
		Expect(version).To(Equal(0))
	})
})

var _ = Describe("Wave", func() {
	source := &data.Wave{StartTime: 100.5, SampleRate: 50, Samples: []int32{1, -2, 3}}

	It("decodes an uncompressed response fed in odd chunks", func() {
		wave := &data.Wave{}
		done, err := feedChunked(handler.NewWave(wave, false), winstontest.WaveResponse(source, false), 7)
		Expect(err).To(Succeed())
		Expect(done).To(BeTrue())
		Expect(wave).To(Equal(source))
	})

	It("decodes a compressed response", func() {
		wave := &data.Wave{}
		done, err := feedChunked(handler.NewWave(wave, true), winstontest.WaveResponse(source, true), 5)
		Expect(err).To(Succeed())
		Expect(done).To(BeTrue())
		Expect(wave).To(Equal(source))
	})

	It("treats a no-data header as done with an empty result", func() {
		wave := &data.Wave{}
		done, err := handler.NewWave(wave, true).Accept(winstontest.NoDataResponse(protocol.CmdWaveRaw))
		Expect(err).To(Succeed())
		Expect(done).To(BeTrue())
		Expect(wave.IsEmpty()).To(BeTrue())
	})

	It("fails on a malformed header", func() {
		wave := &data.Wave{}
		_, err := handler.NewWave(wave, false).Accept([]byte("GETWAVERAW: GS x\n"))
		Expect(err).To(MatchError(protocol.ErrBadHeader))
	})

	It("fails on bytes past the declared length", func() {
		wave := &data.Wave{}
		response := winstontest.WaveResponse(source, false)
		response = append(response, "extra"...)

		h := handler.NewWave(wave, false)
		_, err := h.Accept(response)
		Expect(err).To(MatchError(protocol.ErrBadHeader))
	})

	It("fails when a compressed payload does not inflate", func() {
		wave := &data.Wave{}
		response := append([]byte("GETWAVERAW: GS 10\n"), "not a zlib"...)
		_, err := handler.NewWave(wave, true).Accept(response)
		Expect(err).To(HaveOccurred())
		Expect(wave.IsEmpty()).To(BeTrue())
	})
})

var _ = Describe("Heli", func() {
	source := &data.Helicorder{Rows: []data.HelicorderRow{
		{Time: 0, Min: -10, Max: 10},
		{Time: 1, Min: -20, Max: 20},
	}}

	It("decodes a compressed response fed in odd chunks", func() {
		heli := &data.Helicorder{}
		done, err := feedChunked(handler.NewHeli(heli, true), winstontest.HeliResponse(source, true), 9)
		Expect(err).To(Succeed())
		Expect(done).To(BeTrue())
		Expect(heli).To(Equal(source))
	})

	It("treats a no-data header as done with an empty result", func() {
		heli := &data.Helicorder{}
		done, err := handler.NewHeli(heli, false).Accept(winstontest.NoDataResponse(protocol.CmdHeliRaw))
		Expect(err).To(Succeed())
		Expect(done).To(BeTrue())
		Expect(heli.IsEmpty()).To(BeTrue())
	})
})

var _ = Describe("Rsam", func() {
	source := &data.Rsam{Rows: []data.RsamRow{{Time: 0, Value: 12.5}, {Time: 60, Value: 13}}}

	It("decodes an uncompressed response fed in odd chunks", func() {
		rsam := &data.Rsam{}
		done, err := feedChunked(handler.NewRsam(rsam, false), winstontest.RsamResponse(source, false), 11)
		Expect(err).To(Succeed())
		Expect(done).To(BeTrue())
		Expect(rsam).To(Equal(source))
	})
})

var _ = Describe("Channels", func() {
	source := []data.Channel{
		{SID: 1, Scnl: protocol.NewScnl("AUGL", "EHZ", "AV", ""), MinTime: 0, MaxTime: 100},
		{SID: 2, Scnl: protocol.NewScnl("SPBG", "BHZ", "AV", "01"), MinTime: 5, MaxTime: 200},
	}

	It("collects every menu line before writing the holder", func() {
		channels := []data.Channel{}
		done, err := feedChunked(handler.NewChannels(&channels), winstontest.ChannelsResponse(source), 13)
		Expect(err).To(Succeed())
		Expect(done).To(BeTrue())
		Expect(channels).To(Equal(source))
	})

	It("treats a zero count as done with an empty list", func() {
		channels := []data.Channel{}
		done, err := handler.NewChannels(&channels).Accept([]byte("GETCHANNELS: 0\n"))
		Expect(err).To(Succeed())
		Expect(done).To(BeTrue())
		Expect(channels).To(BeEmpty())
	})

	It("leaves the holder empty when a menu line is malformed", func() {
		channels := []data.Channel{}
		response := []byte("GETCHANNELS: 2\n1 AUGL$EHZ$AV$-- 0.000000 100.000000\nbogus line\n")

		_, err := handler.NewChannels(&channels).Accept(response)
		Expect(err).To(HaveOccurred())
		Expect(channels).To(BeEmpty())
	})

	It("stays pending while lines are missing", func() {
		channels := []data.Channel{}
		h := handler.NewChannels(&channels)

		done, err := h.Accept([]byte("GETCHANNELS: 2\n1 AUGL$EHZ$AV$-- 0.000000 100.000000\n"))
		Expect(err).To(Succeed())
		Expect(done).To(BeFalse())
		Expect(channels).To(BeEmpty())
	})
})

var _ = Describe("Stdout", func() {
	It("streams chunks to its writer and never reports done", func() {
		var buf bytes.Buffer
		h := handler.NewStdout(&buf)

		done, err := h.Accept([]byte("GC: 2\n"))
		Expect(err).To(Succeed())
		Expect(done).To(BeFalse())

		done, err = h.Accept([]byte("more\n"))
		Expect(err).To(Succeed())
		Expect(done).To(BeFalse())

		Expect(buf.String()).To(Equal("GC: 2\nmore\n"))
	})
})
