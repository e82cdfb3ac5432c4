package global

import (
	"go-hangar/app/pkg/notify"
)

var (
	Hub       *notify.Hub
	Amqp      *notify.AMQP
	Publisher notify.Publisher
)

// initEvents websocket总是开启，amqp配置了地址才连接
func initEvents(conf *notify.Config) (err error) {
	Hub = notify.NewHub(Log)
	pubs := notify.Publishers{Hub}
	if conf.AmqpUrl != "" {
		Amqp, err = notify.NewAMQP(conf, Log)
		if err != nil {
			return err
		}
		pubs = append(pubs, Amqp)
	}
	Publisher = pubs
	return nil
}
