package client

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/volcanolab/wws/protocol"
)

type nopHandler struct{}

func (nopHandler) Accept(chunk []byte) (bool, error) { return false, nil }
func (nopHandler) Disconnected()                     {}

var _ = Describe("conn", func() {
	Describe("pending request slot", func() {
		It("rejects a second bind while one request is outstanding", func() {
			c := newConn("127.0.0.1", 0, DefaultIdleTimeout, zap.NewNop())

			req := c.bind(nopHandler{})
			Expect(req).NotTo(BeNil())
			Expect(func() { c.bind(nopHandler{}) }).To(Panic())

			c.unbind(req)
			Expect(func() { c.bind(nopHandler{}) }).NotTo(Panic())
		})

		It("frees the slot again after unbind", func() {
			c := newConn("127.0.0.1", 0, DefaultIdleTimeout, zap.NewNop())

			req := c.bind(nopHandler{})
			c.unbind(req)
			Expect(c.pending).To(BeNil())
		})
	})

	Describe("pendingRequest", func() {
		It("completes exactly once, keeping the first outcome", func() {
			req := newPendingRequest(nopHandler{})

			first := errors.New("first")
			req.complete(first)
			req.complete(errors.New("second"))

			<-req.done
			Expect(req.err).To(Equal(first))
		})

		It("unblocks waiters on completion", func() {
			req := newPendingRequest(nopHandler{})

			go req.complete(nil)

			Eventually(req.done).Should(BeClosed())
			Expect(req.err).To(BeNil())
		})
	})

	Describe("close", func() {
		It("is a no-op while disconnected", func() {
			c := newConn("127.0.0.1", 0, DefaultIdleTimeout, zap.NewNop())
			Expect(c.close()).To(Succeed())
			Expect(c.close()).To(Succeed())
		})
	})

	Describe("write", func() {
		It("reports not connected before a dial", func() {
			c := newConn("127.0.0.1", 0, DefaultIdleTimeout, zap.NewNop())
			Expect(c.write(protocol.EncodeVersion())).To(MatchError(ErrNotConnected))
		})
	})
})
