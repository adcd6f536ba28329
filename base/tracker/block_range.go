package tracker

import (
	"fmt"
	"math/big"
)

// blockRange is an inclusive range of block numbers
type blockRange struct {
	begin uint64
	end   uint64
}

func newBlockRange(begin, end uint64) *blockRange {
	return &blockRange{begin: begin, end: end}
}

func (r *blockRange) split() (*blockRange, *blockRange) {
	mid := r.begin + (r.end-r.begin)/2
	return newBlockRange(r.begin, mid), newBlockRange(mid+1, r.end)
}

// chunks cuts r into consecutive ranges of at most size blocks
func (r *blockRange) chunks(size uint64) []*blockRange {
	res := []*blockRange{}
	for begin := r.begin; begin <= r.end; {
		end := begin + size - 1
		if end > r.end || end < begin {
			end = r.end
		}
		res = append(res, newBlockRange(begin, end))
		if end == r.end {
			break
		}
		begin = end + 1
	}
	return res
}

func (r *blockRange) isSingle() bool {
	return r.begin == r.end
}

func (r *blockRange) from() *big.Int {
	return new(big.Int).SetUint64(r.begin)
}

func (r *blockRange) to() *big.Int {
	return new(big.Int).SetUint64(r.end)
}

func (r *blockRange) String() string {
	return fmt.Sprintf("blockRange{%d-%d}", r.begin, r.end)
}
