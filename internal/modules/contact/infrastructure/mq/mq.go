package mq

import "context"

// Header 消息头，按切片顺序写入
type Header struct {
	Key   string
	Value string
}

// Record 一条待投递的消息
type Record struct {
	Topic   string
	Key     []byte
	Value   []byte
	Headers []Header
}

// Receipt broker 确认后消息的落点
type Receipt struct {
	Topic     string
	Partition int32
	Offset    int64
}

// Producer 同步投递，Send 返回时消息已被 broker 确认
type Producer interface {
	Send(ctx context.Context, rec Record) (Receipt, error)
	Close() error
}
