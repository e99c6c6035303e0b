package hooking

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var posProbe = &HookPos{Name: "Probe"}

type recordingHook struct {
	ctxs []HookCtx
}

func (h *recordingHook) Func(ctx HookCtx) {
	h.ctxs = append(h.ctxs, ctx)
}

type probedDomain struct {
	HookableBase
}

var _ = Describe("HookableBase", func() {
	var (
		domain *probedDomain
		hook   *recordingHook
	)

	BeforeEach(func() {
		domain = new(probedDomain)
		hook = new(recordingHook)
	})

	It("should invoke registered hooks", func() {
		domain.AcceptHook(hook)

		domain.InvokeHook(HookCtx{
			Domain: domain,
			Pos:    posProbe,
			Item:   42,
		})

		Expect(hook.ctxs).To(HaveLen(1))
		Expect(hook.ctxs[0].Pos).To(BeIdenticalTo(posProbe))
		Expect(hook.ctxs[0].Item).To(Equal(42))
	})

	It("should invoke hooks in registration order", func() {
		hook2 := new(recordingHook)
		domain.AcceptHook(hook)
		domain.AcceptHook(hook2)

		domain.InvokeHook(HookCtx{Domain: domain, Pos: posProbe})

		Expect(hook.ctxs).To(HaveLen(1))
		Expect(hook2.ctxs).To(HaveLen(1))
		Expect(domain.Hooks()).To(HaveLen(2))
	})

	It("should panic when registering the same hook twice", func() {
		domain.AcceptHook(hook)

		Expect(func() { domain.AcceptHook(hook) }).To(Panic())
	})

	It("should do nothing when no hook is registered", func() {
		Expect(func() {
			domain.InvokeHook(HookCtx{Domain: domain, Pos: posProbe})
		}).NotTo(Panic())
	})
})
