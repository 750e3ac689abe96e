package qsym

/*
submatrix embeds a canonical two-qubit matrix into the block spanning
wires first and second, with identities on every wire in between. Adjacent
wires need at most a SWAP conjugation; wider blocks move the far wire one
step closer, embed recursively, and swap it back, so no operator larger
than the spanned block is ever built.
*/
func submatrix(m *Matrix, first, second int) *Matrix {
	lo, hi := min(first, second), max(first, second)

	if hi-lo == 1 {
		if lo == first {
			return m
		}
		s := swapMatrix()
		return s.Mul(m).Mul(s)
	}

	s := Kron(Identity(1<<(hi-lo-1)), swapMatrix())

	var inner *Matrix
	if lo == first {
		inner = submatrix(m, lo, hi-1)
	} else {
		inner = submatrix(m, hi-1, lo)
	}
	return s.Mul(Kron(inner, Identity(2))).Mul(s)
}

// embedTwo lifts a two-qubit matrix into the full n-qubit operator.
func embedTwo(m *Matrix, first, second, n int) *Matrix {
	lo, hi := min(first, second), max(first, second)
	return Kron(Identity(1<<lo), submatrix(m, first, second), Identity(1<<(n-hi-1)))
}

// embedSingle lifts a 2x2 matrix acting on wire into the full n-qubit operator.
func embedSingle(m *Matrix, wire, n int) *Matrix {
	return Kron(Identity(1<<wire), m, Identity(1<<(n-wire-1)))
}
