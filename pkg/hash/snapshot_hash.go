package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
)

// CalculateSnapshotHash 计算元数据快照的哈希值
// 只包含业务字段，排除本地元数据字段，用于判断上游数据是否变化
func CalculateSnapshotHash(obj interface{}) (string, error) {
	data, err := json.Marshal(obj)
	if err != nil {
		return "", err
	}

	var objMap map[string]interface{}
	if err := json.Unmarshal(data, &objMap); err != nil {
		return "", err
	}

	// 移除本地维护的元数据字段
	excludeFields := []string{
		"create_time",
		"update_time",
		"snapshot_hash",
		"last_synced_at",
		"task_id",
		"finished",
		"deleted",
	}
	for _, field := range excludeFields {
		delete(objMap, field)
	}

	// 按 key 排序后重新序列化，保证字段顺序稳定
	keys := make([]string, 0, len(objMap))
	for k := range objMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	orderedMap := make(map[string]interface{})
	for _, k := range keys {
		orderedMap[k] = objMap[k]
	}

	cleanData, err := json.Marshal(orderedMap)
	if err != nil {
		return "", err
	}

	hash := sha256.Sum256(cleanData)
	return hex.EncodeToString(hash[:]), nil
}
