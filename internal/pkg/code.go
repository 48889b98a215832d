package pkg

import (
	cryptoRand "crypto/rand"
	"math/big"
	"strings"
)

// InviteCodeAlphabet 56 个字符，去掉易混淆的 0 O 1 I l o
const InviteCodeAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz"

const InviteCodeLength = 8

// NewInviteCode 生成 8 位邀请码
func NewInviteCode() (string, error) {
	var b strings.Builder
	max := big.NewInt(int64(len(InviteCodeAlphabet)))
	for i := 0; i < InviteCodeLength; i++ {
		x, err := cryptoRand.Int(cryptoRand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(InviteCodeAlphabet[x.Int64()])
	}
	return b.String(), nil
}
