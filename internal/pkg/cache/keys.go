package cache

import "fmt"

const productKeyFormat = "product:%d"

// ProductKey é a chave de cache de um produto.
func ProductKey(id int64) string {
	return fmt.Sprintf(productKeyFormat, id)
}

// RateLimitKey é a chave do contador de requisições por IP.
func RateLimitKey(ip string) string {
	return "rate-limit:" + ip
}
