package initial

import (
	"errors"
	"io"

	"ContactBook/internal/config"
	contactService "ContactBook/internal/modules/contact/application/service"
	"ContactBook/internal/modules/contact/domain/event"
	"ContactBook/internal/modules/contact/infrastructure/mq"
	"ContactBook/internal/modules/contact/infrastructure/mq/kafka"
	contactPersistence "ContactBook/internal/modules/contact/infrastructure/persistence"
	"ContactBook/internal/modules/contact/infrastructure/realtime"
	"ContactBook/pkg/ws"
	"ContactBook/pkg/zlog"

	"go.uber.org/zap"
)

// ContactModule 通讯录模块的依赖集合
type ContactModule struct {
	Service contactService.ContactService
	Hub     *ws.Hub

	closers []io.Closer
}

func NewContactModule(conf *config.Config) (*ContactModule, error) {
	hub := ws.NewHub()
	publishers := event.Fanout{realtime.NewHubPublisher(hub)}

	m := &ContactModule{Hub: hub}
	if conf.KafkaConfig.Enabled {
		p, err := kafka.NewProducer(kafka.ProducerConfig{
			Brokers:  conf.KafkaConfig.Brokers,
			ClientID: conf.KafkaConfig.ClientID,
			Version:  conf.KafkaConfig.Version,
		})
		if err != nil {
			return nil, err
		}
		ep := mq.NewEventPublisher(p, conf.KafkaConfig.ContactTopic)
		publishers = append(publishers, ep)
		m.closers = append(m.closers, ep)
		zlog.Info("kafka contact events enabled",
			zap.Strings("brokers", conf.KafkaConfig.Brokers),
			zap.String("topic", conf.KafkaConfig.ContactTopic))
	}

	m.Service = contactService.NewContactService(contactPersistence.NewContactRepository(), publishers)
	return m, nil
}

func (m *ContactModule) Close() error {
	var errs []error
	for _, c := range m.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
