package internal

const (
	// 数据库默认路径
	DefaultDatabasePath = "~/.batch-rename/history.db"

	// 配置文件默认路径
	DefaultConfigPath = "~/.batch-rename/config.yaml"

	// 手动序号文件默认路径
	DefaultCounterPath = "~/.batch-rename/counter"

	// HTTP 服务默认监听地址
	DefaultServerAddr = ":8320"

	// 哈希计算的工作线程数
	DefaultWorkers = 4

	// 缓冲区大小
	DefaultBufferSize = 1000

	// 历史查询默认返回的批次数
	DefaultHistoryLimit = 10
)
