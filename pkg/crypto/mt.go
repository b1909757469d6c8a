package crypto

const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
)

// MT19937 はメルセンヌ・ツイスタ疑似乱数生成器です。
// 暗号用途には使えません。キーストリームの生成元として使います。
type MT19937 struct {
	state [mtN]uint32
	index int
}

// NewMT19937 は seed で初期化した生成器を返します
func NewMT19937(seed uint32) *MT19937 {
	r := &MT19937{}
	r.Seed(seed)
	return r
}

// Seed は生成器を seed で初期化し直します
func (r *MT19937) Seed(seed uint32) {
	r.state[0] = seed
	for i := 1; i < mtN; i++ {
		prev := r.state[i-1]
		r.state[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
	r.index = mtN
}

// Uint32 は次の32ビットの値を返します
func (r *MT19937) Uint32() uint32 {
	if r.index >= mtN {
		r.twist()
	}

	y := r.state[r.index]
	r.index++

	// tempering
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

func (r *MT19937) twist() {
	for i := 0; i < mtN; i++ {
		y := (r.state[i] & mtUpperMask) | (r.state[(i+1)%mtN] & mtLowerMask)
		next := r.state[(i+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			next ^= mtMatrixA
		}
		r.state[i] = next
	}
	r.index = 0
}
