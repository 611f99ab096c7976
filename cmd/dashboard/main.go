package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cohort-dashboard/internal/api"
	"github.com/vfg2006/cohort-dashboard/internal/config"
	"github.com/vfg2006/cohort-dashboard/internal/dataset"
	"github.com/vfg2006/cohort-dashboard/internal/usecases/rendering"
	"github.com/vfg2006/cohort-dashboard/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	// Define formato e nível de log com base na configuração
	if err := log.Configure(cfg.App.LogLevel, cfg.App.Env); err != nil {
		log.L.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	log.L.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// As tabelas são montadas uma única vez e compartilhadas somente leitura
	provider := dataset.NewStatic()
	renderer := rendering.NewService(provider)

	server, err := api.New(cfg, renderer)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao montar o servidor")
	}

	if err := server.Run(ctx); err != nil {
		log.L.WithError(err).Error("Servidor finalizado com erro")
	}
}
