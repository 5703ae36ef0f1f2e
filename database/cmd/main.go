package main

import (
	"flag"

	"chadebebe.link/configs/configsdatabase"
	"chadebebe.link/configs/configslog"
	"chadebebe.link/database"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	configslog.InitLogger()
	defer configslog.SyncLogger()

	migrateFlag := flag.Bool("migrate", false, "Executa as migrações do banco de dados")
	seedFlag := flag.Bool("seed", false, "Executa os seeders do banco de dados")
	flag.Parse()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	db := configsdatabase.GetDB()

	configslog.SLog.Info("Executando a preparação do banco de dados...")
	database.Initialize(db, *migrateFlag, *seedFlag)

	configslog.SLog.Info("Preparação do banco de dados finalizada.")
}
