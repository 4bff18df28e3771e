// Package hasher 计算文件内容的 xxhash 摘要
// 历史记录用它为每个成功重命名的文件留存内容指纹
package hasher

import (
	"io"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/moyu-x/batch-rename/pkg/logger"
)

// CalculateHash 流式计算单个文件的 xxhash64
func CalculateHash(path string) (uint64, error) {
	file, err := os.Open(path)
	if err != nil {
		logger.Get().Warn().Err(err).Msgf("无法打开文件: %s", path)
		return 0, err
	}
	defer file.Close()

	hash := xxhash.New()
	if _, err := io.Copy(hash, file); err != nil {
		logger.Get().Warn().Err(err).Msgf("计算哈希失败: %s", path)
		return 0, err
	}

	result := hash.Sum64()
	logger.Get().Trace().Msgf("文件哈希计算完成: %s -> %x", path, result)
	return result, nil
}
