package lti

// Series connects a and b in cascade: a(s)·b(s).
func Series(a, b TransferFunction) TransferFunction {
	return TransferFunction{
		Num: Trim(a.Num.Mul(b.Num)),
		Den: Trim(a.Den.Mul(b.Den)),
	}
}

// Feedback closes a unity negative feedback loop around the open-loop
// transfer function L(s): L/(1 + L).
func Feedback(open TransferFunction) TransferFunction {
	return TransferFunction{
		Num: Trim(open.Num),
		Den: Trim(open.Den.Add(open.Num)),
	}
}
