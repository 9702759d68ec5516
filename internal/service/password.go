// File: internal/service/password.go
package service

import (
	"golang.org/x/crypto/bcrypt"
)

var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// dummyHash 用於查無使用者時仍執行一次 bcrypt 比對，讓回應時間不洩漏帳號是否存在
var dummyHash = func() string {
	h, err := bcrypt.GenerateFromPassword([]byte("dummy_password_for_timing_equalization"), bcrypt.DefaultCost)
	if err != nil {
		panic("password: failed to generate dummy hash: " + err.Error())
	}
	return string(h)
}()

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
func HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// ComparePassword 比對明文密碼與 bcrypt 哈希，成功回傳 nil，失敗則回傳錯誤
func ComparePassword(hash, password string) error {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password))
}

// ComparePasswordTimingSafe 與 ComparePassword 相同，但 hash 為空時改比對 dummyHash 並一律回報不符
func ComparePasswordTimingSafe(hash, password string) bool {
	if hash == "" {
		_ = ComparePassword(dummyHash, password)
		return false
	}
	return ComparePassword(hash, password) == nil
}
