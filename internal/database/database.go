package database

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
)

// --- Variáveis Globais ---
var (
	DB          *sql.DB
	Redis       *redis.Client
	RedisClient *redis.Client // Alias para compatibilidade
	MinIO       *minio.Client
)

// --- Inicialização ---
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 1. Inicializar Postgres (Supabase)
	connectPostgres(ctx)

	// 2. Inicializar Redis
	connectRedis(ctx)

	// 3. Inicializar MinIO
	connectMinIO(ctx)

	log.Println("✅ Todos os bancos de dados estão conectados")
}

// =============================================
// POSTGRES (Supabase)
// =============================================
func connectPostgres(ctx context.Context) {
	dsn := os.Getenv("SUPABASE_DB_URL")
	if dsn == "" {
		log.Fatal("❌ SUPABASE_DB_URL não configurado")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatal("❌ Erro ao abrir conexão Postgres:", err)
	}

	// Supabase limita conexões no plano gratuito
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		log.Fatal("❌ Erro conexão Postgres:", err)
	}

	DB = db
	log.Println("✅ Conectado ao Postgres (Supabase)")
}

// =============================================
// REDIS
// =============================================
func connectRedis(ctx context.Context) {
	Redis = redis.NewClient(&redis.Options{
		Addr:     os.Getenv("REDIS_HOST"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	RedisClient = Redis // Alias para compatibilidade

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Erro conexão Redis:", err)
	}
	log.Println("✅ Conectado ao Redis")
}

// =============================================
// MINIO
// =============================================
func connectMinIO(ctx context.Context) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	secretKey := os.Getenv("MINIO_SECRET_KEY")
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		log.Fatal("❌ Erro conexão MinIO:", err)
	}

	bucketName := os.Getenv("MINIO_BUCKET")
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		log.Fatal("❌ Erro verificação bucket MinIO:", err)
	}
	if !exists {
		err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			log.Fatal("❌ Erro criação bucket MinIO:", err)
		}
		log.Println("🪣 Bucket criado:", bucketName)
	} else {
		log.Println("🪣 Bucket MinIO já presente:", bucketName)
	}

	MinIO = client
	log.Println("✅ Conectado ao MinIO:", endpoint)
}
