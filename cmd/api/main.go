package main

import (
	"context"
	"log"
	"os"

	"Station_Hub/internal/model"
	"Station_Hub/internal/pkg"
	"Station_Hub/internal/repository/mysql"
	"Station_Hub/internal/repository/redis"
	"Station_Hub/internal/router"
	"Station_Hub/internal/service"
)

func main() {
	dsn := "user:password@tcp(127.0.0.1:3306)/station_hub?charset=utf8mb4&parseTime=True"
	if err := mysql.InitDB(dsn); err != nil {
		panic(err)
	}

	// 连接redis
	if err := redis.Init("127.0.0.1:6379", "", 0); err != nil {
		panic(err)
	}

	// 自动建表（开发阶段 OK）
	mysql.DB.AutoMigrate(
		&model.Station{},
		&model.Role{},
		&model.Membership{},
		&model.ModerationAction{},
		&model.Invite{},
		&model.AuditLog{},
		&model.AuditOutbox{},
		&model.Post{},
		&model.Comment{},
		&model.Vote{},
		&model.KarmaLedger{},
	)

	// 审计事件异步外发，Kafka 不可用时退化为日志
	sender := service.Sender(service.LogSender)
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: []string{brokers},
			Topic:   pkg.AuditTopic,
		})
		if err != nil {
			log.Printf("kafka init err: %v, fallback to log sender", err)
		} else {
			defer producer.Close()
			sender = service.KafkaSender(producer)
		}
	}
	relayer := service.NewOutboxRelayer(sender)
	go relayer.Run(context.Background())

	// 邀请通知邮件配置
	smtp := &pkg.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "no-reply@example.com",
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     "NoReply <no-reply@example.com>",
	}

	// Gin
	r := router.InitRouter(smtp)
	err := r.Run(":8080")
	if err != nil {
		return
	}
}
