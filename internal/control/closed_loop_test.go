package control_test

import (
	"bytes"
	"io"
	"log/slog"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ASukhanov/Control/internal/control"
	"github.com/ASukhanov/Control/internal/lti"
	"github.com/ASukhanov/Control/internal/physics"
)

var _ = Describe("Classify", func() {
	DescribeTable("selects the controller type",
		func(g control.Gains, want control.Type) {
			Expect(control.Classify(g)).To(Equal(want))
		},
		Entry("pure P", control.NewGains(4, 0, 0), control.PPD),
		Entry("PD", control.NewGains(4, 0, 6), control.PPD),
		Entry("pure D", control.NewGains(0, 0, 6), control.PPD),
		Entry("all zero", control.NewGains(0, 0, 0), control.PPD),
		Entry("PI", control.NewGains(4, 5, 0), control.PII),
		Entry("pure I", control.NewGains(0, 5, 0), control.PII),
		Entry("PID", control.NewGains(4, 5, 6), control.PID),
		Entry("ID", control.NewGains(0, 5, 6), control.PID),
		Entry("tiny Ki is not zero", control.NewGains(4, 1e-300, 0), control.PII),
	)

	It("labels each type", func() {
		Expect(control.PPD.String()).To(Equal("P/PD"))
		Expect(control.PII.String()).To(Equal("PI/I"))
		Expect(control.PID.String()).To(Equal("PID"))
		Expect(control.Type(7).String()).To(Equal("unknown"))
	})
})

var _ = Describe("ClosedLoop", func() {
	var plant physics.SpringMass

	BeforeEach(func() {
		control.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
		plant = physics.SpringMass{Mass: 1, Damping: 2, Stiffness: 3}
	})

	AfterEach(func() {
		control.SetLogger(nil)
	})

	DescribeTable("derives the closed-loop polynomials",
		func(g control.Gains, wantType control.Type, wantNum, wantDen []float64) {
			tf, typ := control.ClosedLoop(plant, g)
			Expect(typ).To(Equal(wantType))
			Expect([]float64(tf.Num)).To(Equal(wantNum))
			Expect([]float64(tf.Den)).To(Equal(wantDen))
		},
		Entry("P keeps the zero derivative coefficient", control.NewGains(4, 0, 0), control.PPD, []float64{0, 4}, []float64{1, 2, 7}),
		Entry("PD", control.NewGains(4, 0, 6), control.PPD, []float64{6, 4}, []float64{1, 8, 7}),
		Entry("PI", control.NewGains(4, 5, 0), control.PII, []float64{4, 5}, []float64{1, 2, 7, 5}),
		Entry("pure I has a single-element numerator", control.NewGains(0, 5, 0), control.PII, []float64{5}, []float64{1, 2, 3, 5}),
		Entry("PID", control.NewGains(4, 5, 6), control.PID, []float64{6, 4, 5}, []float64{1, 8, 7, 5}),
		Entry("ID keeps the zero proportional coefficient", control.NewGains(0, 5, 6), control.PID, []float64{6, 0, 5}, []float64{1, 8, 3, 5}),
	)

	DescribeTable("matches the generic unity-feedback interconnection",
		func(m, b, k float64, g control.Gains) {
			p := physics.SpringMass{Mass: m, Damping: b, Stiffness: k}
			tf, _ := control.ClosedLoop(p, g)
			generic := lti.Feedback(lti.Series(g.TransferFunction(), p.TransferFunction()))
			Expect(tf.Equal(generic, 1e-12)).To(BeTrue(), "closed form %v, generic %v", tf, generic)
		},
		Entry("P", 1.0, 2.0, 3.0, control.NewGains(4, 0, 0)),
		Entry("PD", 2.0, 0.5, 10.0, control.NewGains(1, 0, 3)),
		Entry("PI", 1.0, 2.0, 3.0, control.NewGains(4, 5, 0)),
		Entry("I", 0.5, 1.0, 4.0, control.NewGains(0, 2, 0)),
		Entry("PID", 1.0, 2.0, 3.0, control.NewGains(4, 5, 6)),
		Entry("ID", 3.0, 1.0, 1.0, control.NewGains(0, 0.5, 2)),
	)

	It("round-trips every derived model through zero-pole-gain form", func() {
		for _, g := range []control.Gains{
			control.NewGains(4, 0, 0),
			control.NewGains(4, 5, 0),
			control.NewGains(0, 5, 0),
			control.NewGains(4, 5, 6),
		} {
			tf, _ := control.ClosedLoop(plant, g)
			z, err := tf.ZPK()
			Expect(err).NotTo(HaveOccurred())
			Expect(tf.Equal(z.TransferFunction(), 1e-9)).To(BeTrue(), "gains %+v", g)
		}
	})

	It("does not mutate its inputs", func() {
		g := control.NewGains(4, 5, 6)
		control.ClosedLoop(plant, g)
		Expect(g).To(Equal(control.NewGains(4, 5, 6)))
		Expect(plant).To(Equal(physics.SpringMass{Mass: 1, Damping: 2, Stiffness: 3}))
	})
})

var _ = Describe("diagnostics", func() {
	var buf *bytes.Buffer

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		control.SetLogger(slog.New(slog.NewTextHandler(buf, nil)))
	})

	AfterEach(func() {
		control.SetLogger(nil)
	})

	It("logs the controller type and zero-pole-gain form", func() {
		control.ClosedLoop(physics.SpringMass{Mass: 1, Damping: 2, Stiffness: 3}, control.NewGains(4, 5, 0))
		out := buf.String()
		Expect(out).To(ContainSubstring("level=INFO"))
		Expect(out).To(ContainSubstring("controller=PI/I"))
		Expect(out).To(ContainSubstring("zpk.gain=4"))
		Expect(out).To(ContainSubstring("zpk.zeros=[-1.25]"))
		Expect(strings.Count(out, "\n")).To(Equal(1))
	})

	It("warns instead of failing on a degenerate loop", func() {
		tf, typ := control.ClosedLoop(physics.SpringMass{}, control.NewGains(0, 0, 0))
		Expect(typ).To(Equal(control.PPD))
		Expect([]float64(tf.Den)).To(Equal([]float64{0, 0, 0}))
		Expect(buf.String()).To(ContainSubstring("level=WARN"))
	})
})

var _ = Describe("Gains", func() {
	It("builds the controller transfer function", func() {
		c := control.NewGains(4, 5, 6).TransferFunction()
		Expect([]float64(c.Num)).To(Equal([]float64{6, 4, 5}))
		Expect([]float64(c.Den)).To(Equal([]float64{1, 0}))

		c = control.NewGains(4, 0, 6).TransferFunction()
		Expect([]float64(c.Num)).To(Equal([]float64{6, 4}))
		Expect([]float64(c.Den)).To(Equal([]float64{1}))
	})

	It("exposes and replaces individual gains", func() {
		g := control.NewGains(1, 2, 3)
		Expect(g.GetParams()).To(HaveKeyWithValue("Ki", 2.0))
		Expect(g.WithParam("Kd", 9)).To(Equal(control.NewGains(1, 2, 9)))
		Expect(g.WithParam("Target", 9)).To(Equal(g))
	})
})
