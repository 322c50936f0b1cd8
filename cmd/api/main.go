package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	apicommentary "acquisition_calc/pkg/api/commentary"
	apiconfig "acquisition_calc/pkg/api/config"
	apiscenario "acquisition_calc/pkg/api/scenario"
	"acquisition_calc/pkg/core/agent"
	"acquisition_calc/pkg/core/store"
)

func main() {
	godotenv.Load()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Database is optional: without DATABASE_URL the service computes but
	// does not persist.
	ctx := context.Background()
	if os.Getenv("DATABASE_URL") != "" {
		if err := store.InitDB(ctx); err != nil {
			logrus.WithError(err).Warn("database unavailable, running without persistence")
		}
		defer store.Close()
	}

	resultCache := store.NewResultCache(os.Getenv("REDIS_ADDR"))
	vault := store.NewSnapshotVault(store.GetPool(), os.Getenv("SNAPSHOT_DIR"))

	agentMgr := agent.NewManager(agent.LoadConfig("config/models.yaml"))

	apiscenario.InitHandler(resultCache, vault)
	http.HandleFunc("/api/scenarios/compute", apiscenario.HandleCompute)
	http.HandleFunc("/api/scenarios/snapshot", apiscenario.HandleSnapshotSave)
	http.HandleFunc("/api/scenarios/snapshot/load", apiscenario.HandleSnapshotLoad)
	http.HandleFunc("/api/scenarios/snapshot/list", apiscenario.HandleSnapshotList)

	apicommentary.InitHandler(agentMgr)
	http.HandleFunc("/api/commentary", apicommentary.HandleCommentary)

	configHandler := apiconfig.NewHandler(agentMgr)
	http.HandleFunc("/api/config", configHandler.HandleConfig)
	http.HandleFunc("/api/config/switch", configHandler.HandleSwitch)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.WithField("port", port).Info("api server starting")
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		logrus.WithError(err).Fatal("server failed to start")
	}
}
