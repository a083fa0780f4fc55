package enum

const (
	// 单张图片的处理结果
	// 每次运行只处理一次，失败的图片不会在本次运行中重试
	ImageStateSuccess = 1
	ImageStateFail    = 2
	ImageStateSkipped = 3 // 目标文件已存在

	// url最后一段为空时使用的文件名
	FallbackNamePattern = "image_%d.jpg"

	// 写入过程中的临时文件后缀
	PartialFileSuffix = ".part"
)
