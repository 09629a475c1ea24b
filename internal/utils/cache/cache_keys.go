package cache

import "fmt"

type EntityType string

const (
	EntityFeeStructure EntityType = "fee_structure"
)

type KeyType string

const (
	KeyMerchant   KeyType = "merchant"
	KeyGeneration KeyType = "generation"
)

// GenerateKey creates a standardized cache key
func GenerateKey(entity EntityType, keyType KeyType, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entity, keyType, value)
}

// EffectiveStructureKey is the key of a merchant's resolved fee structure.
func EffectiveStructureKey(merchantID string) string {
	return GenerateKey(EntityFeeStructure, KeyMerchant, merchantID)
}

// EffectiveGenerationKey counts invalidations of a merchant's resolved
// fee structure.
func EffectiveGenerationKey(merchantID string) string {
	return GenerateKey(EntityFeeStructure, KeyGeneration, merchantID)
}
