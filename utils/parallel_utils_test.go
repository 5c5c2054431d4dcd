package utils

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	{ // Partition sizes
		getHisto := func(K, Np int) (histo map[int]int) {
			pm := NewPartitionMap(Np, K)
			histo = make(map[int]int)
			for np := 0; np < pm.ParallelDegree; np++ {
				kMin, kMax := pm.GetBucketRange(np)
				maxK := kMax - kMin
				histo[maxK]++
			}
			return
		}
		getTotal := func(histo map[int]int) (total int) {
			for key, count := range histo {
				total += key * count
			}
			return
		}
		assert.Equal(t, map[int]int{0: 30, 1: 2}, getHisto(2, 32))
		assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
		assert.Equal(t, map[int]int{8: 32}, getHisto(256, 32))
		assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
		assert.Equal(t, 287, getTotal(getHisto(287, 32)))
		for n := 64; n < 2000; n++ {
			var (
				keys   [2]float64
				keyNum int
			)
			histo := getHisto(n, 32)
			for key := range histo {
				keys[keyNum] = float64(key)
				keyNum++
			}
			if keyNum == 2 {
				assert.Equal(t, 1., math.Abs(keys[0]-keys[1])) // Maximum imbalance of 1
			}
			assert.Equal(t, n, getTotal(histo))
		}
	}
	{ // Degenerate degree is clamped to serial
		pm := NewPartitionMap(0, 7)
		assert.Equal(t, 1, pm.ParallelDegree)
		kMin, kMax := pm.GetBucketRange(0)
		assert.Equal(t, [2]int{0, 7}, [2]int{kMin, kMax})
	}
	{ // Run visits every index exactly once
		for _, degree := range []int{1, 3, 8, 20} {
			var (
				pm    = NewPartitionMap(degree, 13)
				seen  = make([]int, 13)
				mutex sync.Mutex
			)
			pm.Run(func(bn, kMin, kMax int) {
				mutex.Lock()
				defer mutex.Unlock()
				for k := kMin; k < kMax; k++ {
					seen[k]++
				}
			})
			assert.Equal(t, ConstArray(13, 1), toFloats(seen))
		}
	}
}

func toFloats(a []int) (r []float64) {
	r = make([]float64, len(a))
	for i, v := range a {
		r[i] = float64(v)
	}
	return
}
