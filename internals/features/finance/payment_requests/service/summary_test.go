package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoverageRatio(t *testing.T) {
	// đợt thu rỗng không được chia cho 0
	assert.Equal(t, 0.0, CoverageRatio(0, 0))
	assert.Equal(t, 0.75, CoverageRatio(3, 4))
	assert.Equal(t, 1.0, CoverageRatio(10, 10))
}

func TestFinalAmount(t *testing.T) {
	assert.Equal(t, int64(500_000), FinalAmount(500_000, 0))
	assert.Equal(t, int64(250_000), FinalAmount(500_000, 50))
	assert.Equal(t, int64(0), FinalAmount(500_000, 100))
	// dữ liệu nhập tay ngoài khoảng thì kẹp lại
	assert.Equal(t, int64(500_000), FinalAmount(500_000, -5))
	assert.Equal(t, int64(0), FinalAmount(500_000, 120))
}
