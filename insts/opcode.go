package insts

// Opcode identifies a decoded instruction mnemonic and form. The set is
// closed: every entry in the opcode tables maps to exactly one Opcode.
type Opcode uint16

// OpInvalid marks a byte sequence that did not decode to any instruction.
const OpInvalid Opcode = 0

// Integer instructions from the one-byte map.
const (
	OpADD Opcode = iota + 1
	OpOR
	OpADC
	OpSBB
	OpAND
	OpSUB
	OpXOR
	OpCMP
	OpPUSH
	OpPOP
	OpPUSHA
	OpPOPA
	OpPUSHF
	OpPOPF
	OpBOUND
	OpARPL
	OpMOVSXD
	OpIMUL
	OpMUL
	OpDIV
	OpIDIV
	OpNOT
	OpNEG
	OpTEST
	OpINC
	OpDEC
	OpDAA
	OpDAS
	OpAAA
	OpAAS
	OpAAM
	OpAAD
	OpSALC
	OpXLAT
	OpINSB
	OpINSW
	OpINSD
	OpOUTSB
	OpOUTSW
	OpOUTSD
	OpMOVSB
	OpMOVSW
	OpMOVSDStr // string op "movsd"; distinct from the SSE2 OpMOVSD
	OpMOVSQ
	OpCMPSB
	OpCMPSW
	OpCMPSDStr // string op "cmpsd"; distinct from the SSE2 OpCMPSD
	OpCMPSQ
	OpSTOSB
	OpSTOSW
	OpSTOSD
	OpSTOSQ
	OpLODSB
	OpLODSW
	OpLODSD
	OpLODSQ
	OpSCASB
	OpSCASW
	OpSCASD
	OpSCASQ
	OpMOV
	OpLEA
	OpXCHG
	OpNOP
	OpPAUSE
	OpCBW
	OpCWDE
	OpCDQE
	OpCWD
	OpCDQ
	OpCQO
	OpCALL
	OpCALLFar
	OpRET
	OpRETF
	OpIRET
	OpIRETD
	OpIRETQ
	OpENTER
	OpLEAVE
	OpINT3
	OpINT
	OpINTO
	OpINT1
	OpJO
	OpJNO
	OpJB
	OpJAE
	OpJZ
	OpJNZ
	OpJBE
	OpJA
	OpJS
	OpJNS
	OpJP
	OpJNP
	OpJL
	OpJGE
	OpJLE
	OpJG
	OpJMP
	OpJMPFar
	OpLOOPNZ
	OpLOOPZ
	OpLOOP
	OpJCXZ
	OpJECXZ
	OpJRCXZ
	OpIN
	OpOUT
	OpHLT
	OpCMC
	OpCLC
	OpSTC
	OpCLI
	OpSTI
	OpCLD
	OpSTD
	OpFWAIT
	OpROL
	OpROR
	OpRCL
	OpRCR
	OpSHL
	OpSHR
	OpSAL
	OpSAR
	OpLES
	OpLDS
	OpSAHF
	OpLAHF
)

// System and two-byte map integer instructions.
const (
	OpSLDT Opcode = iota + 140
	OpSTR
	OpLLDT
	OpLTR
	OpVERR
	OpVERW
	OpSGDT
	OpSIDT
	OpLGDT
	OpLIDT
	OpSMSW
	OpLMSW
	OpINVLPG
	OpSWAPGS
	OpRDTSCP
	OpMONITOR
	OpMWAIT
	OpVMCALL
	OpVMLAUNCH
	OpVMRESUME
	OpVMXOFF
	OpVMPTRLD
	OpVMPTRST
	OpVMCLEAR
	OpVMXON
	OpVMRUN
	OpVMMCALL
	OpVMLOAD
	OpVMSAVE
	OpSTGI
	OpCLGI
	OpSKINIT
	OpINVLPGA
	OpLAR
	OpLSL
	OpSYSCALL
	OpCLTS
	OpSYSRET
	OpINVD
	OpWBINVD
	OpUD2
	OpPREFETCHW
	OpFEMMS
	OpSYSENTER
	OpSYSEXIT
	OpWRMSR
	OpRDTSC
	OpRDMSR
	OpRDPMC
	OpCMOVO
	OpCMOVNO
	OpCMOVB
	OpCMOVAE
	OpCMOVZ
	OpCMOVNZ
	OpCMOVBE
	OpCMOVA
	OpCMOVS
	OpCMOVNS
	OpCMOVP
	OpCMOVNP
	OpCMOVL
	OpCMOVGE
	OpCMOVLE
	OpCMOVG
	OpSETO
	OpSETNO
	OpSETB
	OpSETAE
	OpSETZ
	OpSETNZ
	OpSETBE
	OpSETA
	OpSETS
	OpSETNS
	OpSETP
	OpSETNP
	OpSETL
	OpSETGE
	OpSETLE
	OpSETG
	OpCPUID
	OpRSM
	OpBT
	OpBTS
	OpBTR
	OpBTC
	OpBSF
	OpBSR
	OpTZCNT
	OpLZCNT
	OpPOPCNT
	OpSHLD
	OpSHRD
	OpCMPXCHG
	OpCMPXCHG8B
	OpCMPXCHG16B
	OpXADD
	OpMOVNTI
	OpBSWAP
	OpMOVZX
	OpMOVSX
	OpLSS
	OpLFS
	OpLGS
	OpMOVBE
	OpPREFETCHNTA
	OpPREFETCHT0
	OpPREFETCHT1
	OpPREFETCHT2
	OpFXSAVE
	OpFXRSTOR
	OpLDMXCSR
	OpSTMXCSR
	OpXSAVE
	OpXRSTOR
	OpCLFLUSH
	OpLFENCE
	OpMFENCE
	OpSFENCE
)

// SSE family instructions.
const (
	OpMOVUPS Opcode = iota + 270
	OpMOVUPD
	OpMOVSS
	OpMOVSD
	OpMOVLPS
	OpMOVLPD
	OpMOVSLDUP
	OpMOVDDUP
	OpMOVHPS
	OpMOVHPD
	OpMOVSHDUP
	OpUNPCKLPS
	OpUNPCKLPD
	OpUNPCKHPS
	OpUNPCKHPD
	OpMOVAPS
	OpMOVAPD
	OpCVTPI2PS
	OpCVTPI2PD
	OpCVTSI2SS
	OpCVTSI2SD
	OpMOVNTPS
	OpMOVNTPD
	OpCVTTPS2PI
	OpCVTTPD2PI
	OpCVTTSS2SI
	OpCVTTSD2SI
	OpCVTPS2PI
	OpCVTPD2PI
	OpCVTSS2SI
	OpCVTSD2SI
	OpUCOMISS
	OpUCOMISD
	OpCOMISS
	OpCOMISD
	OpMOVMSKPS
	OpMOVMSKPD
	OpSQRTPS
	OpSQRTPD
	OpSQRTSS
	OpSQRTSD
	OpRSQRTPS
	OpRSQRTSS
	OpRCPPS
	OpRCPSS
	OpANDPS
	OpANDPD
	OpANDNPS
	OpANDNPD
	OpORPS
	OpORPD
	OpXORPS
	OpXORPD
	OpADDPS
	OpADDPD
	OpADDSS
	OpADDSD
	OpMULPS
	OpMULPD
	OpMULSS
	OpMULSD
	OpCVTPS2PD
	OpCVTPD2PS
	OpCVTSS2SD
	OpCVTSD2SS
	OpCVTDQ2PS
	OpCVTPS2DQ
	OpCVTTPS2DQ
	OpSUBPS
	OpSUBPD
	OpSUBSS
	OpSUBSD
	OpMINPS
	OpMINPD
	OpMINSS
	OpMINSD
	OpDIVPS
	OpDIVPD
	OpDIVSS
	OpDIVSD
	OpMAXPS
	OpMAXPD
	OpMAXSS
	OpMAXSD
	OpPUNPCKLBW
	OpPUNPCKLWD
	OpPUNPCKLDQ
	OpPACKSSWB
	OpPCMPGTB
	OpPCMPGTW
	OpPCMPGTD
	OpPACKUSWB
	OpPUNPCKHBW
	OpPUNPCKHWD
	OpPUNPCKHDQ
	OpPACKSSDW
	OpPUNPCKLQDQ
	OpPUNPCKHQDQ
	OpMOVD
	OpMOVQ
	OpMOVDQA
	OpMOVDQU
	OpPSHUFW
	OpPSHUFD
	OpPSHUFHW
	OpPSHUFLW
	OpPCMPEQB
	OpPCMPEQW
	OpPCMPEQD
	OpEMMS
	OpVZEROUPPER
	OpVZEROALL
	OpCMPPS
	OpCMPPD
	OpCMPSS
	OpCMPSD
	OpPINSRW
	OpPEXTRW
	OpSHUFPS
	OpSHUFPD
	OpADDSUBPD
	OpADDSUBPS
	OpPSRLW
	OpPSRLD
	OpPSRLQ
	OpPADDQ
	OpPMULLW
	OpPMOVMSKB
	OpPSUBUSB
	OpPSUBUSW
	OpPMINUB
	OpPAND
	OpPADDUSB
	OpPADDUSW
	OpPMAXUB
	OpPANDN
	OpPAVGB
	OpPSRAW
	OpPSRAD
	OpPAVGW
	OpPMULHUW
	OpPMULHW
	OpCVTDQ2PD
	OpCVTTPD2DQ
	OpCVTPD2DQ
	OpMOVNTQ
	OpMOVNTDQ
	OpPSUBSB
	OpPSUBSW
	OpPMINSW
	OpPOR
	OpPADDSB
	OpPADDSW
	OpPMAXSW
	OpPXOR
	OpLDDQU
	OpPSLLW
	OpPSLLD
	OpPSLLQ
	OpPMULUDQ
	OpPMADDWD
	OpPSADBW
	OpMASKMOVQ
	OpMASKMOVDQU
	OpPSUBB
	OpPSUBW
	OpPSUBD
	OpPSUBQ
	OpPADDB
	OpPADDW
	OpPADDD
	OpPSLLDQ
	OpPSRLDQ
)

// SSSE3, SSE4.1, SSE4.2, AES, CLMUL, and FMA instructions.
const (
	OpPSHUFB Opcode = iota + 460
	OpPHADDW
	OpPHADDD
	OpPHADDSW
	OpPMADDUBSW
	OpPHSUBW
	OpPHSUBD
	OpPHSUBSW
	OpPSIGNB
	OpPSIGNW
	OpPSIGND
	OpPMULHRSW
	OpPABSB
	OpPABSW
	OpPABSD
	OpPALIGNR
	OpPTEST
	OpPMOVSXBW
	OpPMOVSXBD
	OpPMOVSXBQ
	OpPMOVSXWD
	OpPMOVSXWQ
	OpPMOVSXDQ
	OpPMULDQ
	OpPCMPEQQ
	OpMOVNTDQA
	OpPACKUSDW
	OpPMOVZXBW
	OpPMOVZXBD
	OpPMOVZXBQ
	OpPMOVZXWD
	OpPMOVZXWQ
	OpPMOVZXDQ
	OpPMINSB
	OpPMINSD
	OpPMINUW
	OpPMINUD
	OpPMAXSB
	OpPMAXSD
	OpPMAXUW
	OpPMAXUD
	OpPMULLD
	OpPHMINPOSUW
	OpROUNDPS
	OpROUNDPD
	OpROUNDSS
	OpROUNDSD
	OpBLENDPS
	OpBLENDPD
	OpPBLENDW
	OpPEXTRB
	OpPEXTRD
	OpEXTRACTPS
	OpPINSRB
	OpINSERTPS
	OpPINSRD
	OpDPPS
	OpDPPD
	OpMPSADBW
	OpPCMPGTQ
	OpCRC32
	OpPCMPESTRM
	OpPCMPESTRI
	OpPCMPISTRM
	OpPCMPISTRI
	OpAESIMC
	OpAESENC
	OpAESENCLAST
	OpAESDEC
	OpAESDECLAST
	OpAESKEYGENASSIST
	OpPCLMULQDQ
	OpVFMADD132PS
	OpVFMADD132PD
	OpVFMADD213PS
	OpVFMADD213PD
	OpVFMADD231PS
	OpVFMADD231PD
	OpPBLENDVB
	OpBLENDVPS
	OpBLENDVPD
	OpPEXTRQ
	OpPINSRQ
)

// 3DNow! instructions (0F 0F suffix-encoded).
const (
	OpPI2FW Opcode = iota + 550
	OpPI2FD
	OpPF2IW
	OpPF2ID
	OpPFNACC
	OpPFPNACC
	OpPFCMPGE
	OpPFMIN
	OpPFRCP
	OpPFRSQRT
	OpPFSUB
	OpPFADD
	OpPFCMPGT
	OpPFMAX
	OpPFRCPIT1
	OpPFRSQIT1
	OpPFACC
	OpPFCMPEQ
	OpPFMUL
	OpPFRCPIT2
	OpPMULHRW
	OpPSWAPD
	OpPAVGUSB
	OpPFSUBR
)

// x87 floating point instructions.
const (
	OpFADD Opcode = iota + 590
	OpFMUL
	OpFCOM
	OpFCOMP
	OpFSUB
	OpFSUBR
	OpFDIV
	OpFDIVR
	OpFLD
	OpFST
	OpFSTP
	OpFLDENV
	OpFLDCW
	OpFNSTENV
	OpFNSTCW
	OpFIADD
	OpFIMUL
	OpFICOM
	OpFICOMP
	OpFISUB
	OpFISUBR
	OpFIDIV
	OpFIDIVR
	OpFILD
	OpFIST
	OpFISTP
	OpFISTTP
	OpFBLD
	OpFBSTP
	OpFRSTOR
	OpFNSAVE
	OpFNSTSW
	OpFCHS
	OpFABS
	OpFTST
	OpFXAM
	OpFLD1
	OpFLDL2T
	OpFLDL2E
	OpFLDPI
	OpFLDLG2
	OpFLDLN2
	OpFLDZ
	OpF2XM1
	OpFYL2X
	OpFPTAN
	OpFPATAN
	OpFXTRACT
	OpFPREM1
	OpFDECSTP
	OpFINCSTP
	OpFPREM
	OpFYL2XP1
	OpFSQRT
	OpFSINCOS
	OpFRNDINT
	OpFSCALE
	OpFSIN
	OpFCOS
	OpFXCH
	OpFNOP
	OpFCMOVB
	OpFCMOVE
	OpFCMOVBE
	OpFCMOVU
	OpFCMOVNB
	OpFCMOVNE
	OpFCMOVNBE
	OpFCMOVNU
	OpFUCOMPP
	OpFNCLEX
	OpFNINIT
	OpFUCOMI
	OpFCOMI
	OpFFREE
	OpFUCOM
	OpFUCOMP
	OpFADDP
	OpFMULP
	OpFCOMPP
	OpFSUBRP
	OpFSUBP
	OpFDIVRP
	OpFDIVP
	OpFUCOMIP
	OpFCOMIP
)

// opcodeCount bounds the opcode index space for classification tables.
const opcodeCount = 690

var opcodeNames = [opcodeCount]string{
	OpInvalid: "undefined",

	OpADD: "add", OpOR: "or", OpADC: "adc", OpSBB: "sbb",
	OpAND: "and", OpSUB: "sub", OpXOR: "xor", OpCMP: "cmp",
	OpPUSH: "push", OpPOP: "pop", OpPUSHA: "pusha", OpPOPA: "popa",
	OpPUSHF: "pushf", OpPOPF: "popf",
	OpBOUND: "bound", OpARPL: "arpl", OpMOVSXD: "movsxd",
	OpIMUL: "imul", OpMUL: "mul", OpDIV: "div", OpIDIV: "idiv",
	OpNOT: "not", OpNEG: "neg", OpTEST: "test",
	OpINC: "inc", OpDEC: "dec",
	OpDAA: "daa", OpDAS: "das", OpAAA: "aaa", OpAAS: "aas",
	OpAAM: "aam", OpAAD: "aad", OpSALC: "salc", OpXLAT: "xlat",
	OpINSB: "insb", OpINSW: "insw", OpINSD: "insd",
	OpOUTSB: "outsb", OpOUTSW: "outsw", OpOUTSD: "outsd",
	OpMOVSB: "movsb", OpMOVSW: "movsw", OpMOVSDStr: "movsd", OpMOVSQ: "movsq",
	OpCMPSB: "cmpsb", OpCMPSW: "cmpsw", OpCMPSDStr: "cmpsd", OpCMPSQ: "cmpsq",
	OpSTOSB: "stosb", OpSTOSW: "stosw", OpSTOSD: "stosd", OpSTOSQ: "stosq",
	OpLODSB: "lodsb", OpLODSW: "lodsw", OpLODSD: "lodsd", OpLODSQ: "lodsq",
	OpSCASB: "scasb", OpSCASW: "scasw", OpSCASD: "scasd", OpSCASQ: "scasq",
	OpMOV: "mov", OpLEA: "lea", OpXCHG: "xchg", OpNOP: "nop", OpPAUSE: "pause",
	OpCBW: "cbw", OpCWDE: "cwde", OpCDQE: "cdqe",
	OpCWD: "cwd", OpCDQ: "cdq", OpCQO: "cqo",
	OpCALL: "call", OpCALLFar: "call far",
	OpRET: "ret", OpRETF: "retf",
	OpIRET: "iret", OpIRETD: "iretd", OpIRETQ: "iretq",
	OpENTER: "enter", OpLEAVE: "leave",
	OpINT3: "int3", OpINT: "int", OpINTO: "into", OpINT1: "int1",
	OpJO: "jo", OpJNO: "jno", OpJB: "jb", OpJAE: "jae",
	OpJZ: "jz", OpJNZ: "jnz", OpJBE: "jbe", OpJA: "ja",
	OpJS: "js", OpJNS: "jns", OpJP: "jp", OpJNP: "jnp",
	OpJL: "jl", OpJGE: "jge", OpJLE: "jle", OpJG: "jg",
	OpJMP: "jmp", OpJMPFar: "jmp far",
	OpLOOPNZ: "loopnz", OpLOOPZ: "loopz", OpLOOP: "loop",
	OpJCXZ: "jcxz", OpJECXZ: "jecxz", OpJRCXZ: "jrcxz",
	OpIN: "in", OpOUT: "out",
	OpHLT: "hlt", OpCMC: "cmc", OpCLC: "clc", OpSTC: "stc",
	OpCLI: "cli", OpSTI: "sti", OpCLD: "cld", OpSTD: "std",
	OpFWAIT: "fwait",
	OpROL: "rol", OpROR: "ror", OpRCL: "rcl", OpRCR: "rcr",
	OpSHL: "shl", OpSHR: "shr", OpSAL: "sal", OpSAR: "sar",
	OpLES: "les", OpLDS: "lds", OpSAHF: "sahf", OpLAHF: "lahf",

	OpSLDT: "sldt", OpSTR: "str", OpLLDT: "lldt", OpLTR: "ltr",
	OpVERR: "verr", OpVERW: "verw",
	OpSGDT: "sgdt", OpSIDT: "sidt", OpLGDT: "lgdt", OpLIDT: "lidt",
	OpSMSW: "smsw", OpLMSW: "lmsw", OpINVLPG: "invlpg",
	OpSWAPGS: "swapgs", OpRDTSCP: "rdtscp",
	OpMONITOR: "monitor", OpMWAIT: "mwait",
	OpVMCALL: "vmcall", OpVMLAUNCH: "vmlaunch", OpVMRESUME: "vmresume",
	OpVMXOFF: "vmxoff", OpVMPTRLD: "vmptrld", OpVMPTRST: "vmptrst",
	OpVMCLEAR: "vmclear", OpVMXON: "vmxon",
	OpVMRUN: "vmrun", OpVMMCALL: "vmmcall", OpVMLOAD: "vmload",
	OpVMSAVE: "vmsave", OpSTGI: "stgi", OpCLGI: "clgi",
	OpSKINIT: "skinit", OpINVLPGA: "invlpga",
	OpLAR: "lar", OpLSL: "lsl", OpSYSCALL: "syscall", OpCLTS: "clts",
	OpSYSRET: "sysret", OpINVD: "invd", OpWBINVD: "wbinvd", OpUD2: "ud2",
	OpPREFETCHW: "prefetchw", OpFEMMS: "femms",
	OpSYSENTER: "sysenter", OpSYSEXIT: "sysexit",
	OpWRMSR: "wrmsr", OpRDTSC: "rdtsc", OpRDMSR: "rdmsr", OpRDPMC: "rdpmc",
	OpCMOVO: "cmovo", OpCMOVNO: "cmovno", OpCMOVB: "cmovb", OpCMOVAE: "cmovae",
	OpCMOVZ: "cmovz", OpCMOVNZ: "cmovnz", OpCMOVBE: "cmovbe", OpCMOVA: "cmova",
	OpCMOVS: "cmovs", OpCMOVNS: "cmovns", OpCMOVP: "cmovp", OpCMOVNP: "cmovnp",
	OpCMOVL: "cmovl", OpCMOVGE: "cmovge", OpCMOVLE: "cmovle", OpCMOVG: "cmovg",
	OpSETO: "seto", OpSETNO: "setno", OpSETB: "setb", OpSETAE: "setae",
	OpSETZ: "setz", OpSETNZ: "setnz", OpSETBE: "setbe", OpSETA: "seta",
	OpSETS: "sets", OpSETNS: "setns", OpSETP: "setp", OpSETNP: "setnp",
	OpSETL: "setl", OpSETGE: "setge", OpSETLE: "setle", OpSETG: "setg",
	OpCPUID: "cpuid", OpRSM: "rsm",
	OpBT: "bt", OpBTS: "bts", OpBTR: "btr", OpBTC: "btc",
	OpBSF: "bsf", OpBSR: "bsr", OpTZCNT: "tzcnt", OpLZCNT: "lzcnt",
	OpPOPCNT: "popcnt", OpSHLD: "shld", OpSHRD: "shrd",
	OpCMPXCHG: "cmpxchg", OpCMPXCHG8B: "cmpxchg8b", OpCMPXCHG16B: "cmpxchg16b",
	OpXADD: "xadd", OpMOVNTI: "movnti", OpBSWAP: "bswap",
	OpMOVZX: "movzx", OpMOVSX: "movsx",
	OpLSS: "lss", OpLFS: "lfs", OpLGS: "lgs", OpMOVBE: "movbe",
	OpPREFETCHNTA: "prefetchnta", OpPREFETCHT0: "prefetcht0",
	OpPREFETCHT1: "prefetcht1", OpPREFETCHT2: "prefetcht2",
	OpFXSAVE: "fxsave", OpFXRSTOR: "fxrstor",
	OpLDMXCSR: "ldmxcsr", OpSTMXCSR: "stmxcsr",
	OpXSAVE: "xsave", OpXRSTOR: "xrstor", OpCLFLUSH: "clflush",
	OpLFENCE: "lfence", OpMFENCE: "mfence", OpSFENCE: "sfence",

	OpMOVUPS: "movups", OpMOVUPD: "movupd", OpMOVSS: "movss", OpMOVSD: "movsd",
	OpMOVLPS: "movlps", OpMOVLPD: "movlpd",
	OpMOVSLDUP: "movsldup", OpMOVDDUP: "movddup",
	OpMOVHPS: "movhps", OpMOVHPD: "movhpd", OpMOVSHDUP: "movshdup",
	OpUNPCKLPS: "unpcklps", OpUNPCKLPD: "unpcklpd",
	OpUNPCKHPS: "unpckhps", OpUNPCKHPD: "unpckhpd",
	OpMOVAPS: "movaps", OpMOVAPD: "movapd",
	OpCVTPI2PS: "cvtpi2ps", OpCVTPI2PD: "cvtpi2pd",
	OpCVTSI2SS: "cvtsi2ss", OpCVTSI2SD: "cvtsi2sd",
	OpMOVNTPS: "movntps", OpMOVNTPD: "movntpd",
	OpCVTTPS2PI: "cvttps2pi", OpCVTTPD2PI: "cvttpd2pi",
	OpCVTTSS2SI: "cvttss2si", OpCVTTSD2SI: "cvttsd2si",
	OpCVTPS2PI: "cvtps2pi", OpCVTPD2PI: "cvtpd2pi",
	OpCVTSS2SI: "cvtss2si", OpCVTSD2SI: "cvtsd2si",
	OpUCOMISS: "ucomiss", OpUCOMISD: "ucomisd",
	OpCOMISS: "comiss", OpCOMISD: "comisd",
	OpMOVMSKPS: "movmskps", OpMOVMSKPD: "movmskpd",
	OpSQRTPS: "sqrtps", OpSQRTPD: "sqrtpd", OpSQRTSS: "sqrtss", OpSQRTSD: "sqrtsd",
	OpRSQRTPS: "rsqrtps", OpRSQRTSS: "rsqrtss", OpRCPPS: "rcpps", OpRCPSS: "rcpss",
	OpANDPS: "andps", OpANDPD: "andpd", OpANDNPS: "andnps", OpANDNPD: "andnpd",
	OpORPS: "orps", OpORPD: "orpd", OpXORPS: "xorps", OpXORPD: "xorpd",
	OpADDPS: "addps", OpADDPD: "addpd", OpADDSS: "addss", OpADDSD: "addsd",
	OpMULPS: "mulps", OpMULPD: "mulpd", OpMULSS: "mulss", OpMULSD: "mulsd",
	OpCVTPS2PD: "cvtps2pd", OpCVTPD2PS: "cvtpd2ps",
	OpCVTSS2SD: "cvtss2sd", OpCVTSD2SS: "cvtsd2ss",
	OpCVTDQ2PS: "cvtdq2ps", OpCVTPS2DQ: "cvtps2dq", OpCVTTPS2DQ: "cvttps2dq",
	OpSUBPS: "subps", OpSUBPD: "subpd", OpSUBSS: "subss", OpSUBSD: "subsd",
	OpMINPS: "minps", OpMINPD: "minpd", OpMINSS: "minss", OpMINSD: "minsd",
	OpDIVPS: "divps", OpDIVPD: "divpd", OpDIVSS: "divss", OpDIVSD: "divsd",
	OpMAXPS: "maxps", OpMAXPD: "maxpd", OpMAXSS: "maxss", OpMAXSD: "maxsd",
	OpPUNPCKLBW: "punpcklbw", OpPUNPCKLWD: "punpcklwd", OpPUNPCKLDQ: "punpckldq",
	OpPACKSSWB: "packsswb",
	OpPCMPGTB: "pcmpgtb", OpPCMPGTW: "pcmpgtw", OpPCMPGTD: "pcmpgtd",
	OpPACKUSWB: "packuswb",
	OpPUNPCKHBW: "punpckhbw", OpPUNPCKHWD: "punpckhwd", OpPUNPCKHDQ: "punpckhdq",
	OpPACKSSDW: "packssdw",
	OpPUNPCKLQDQ: "punpcklqdq", OpPUNPCKHQDQ: "punpckhqdq",
	OpMOVD: "movd", OpMOVQ: "movq", OpMOVDQA: "movdqa", OpMOVDQU: "movdqu",
	OpPSHUFW: "pshufw", OpPSHUFD: "pshufd",
	OpPSHUFHW: "pshufhw", OpPSHUFLW: "pshuflw",
	OpPCMPEQB: "pcmpeqb", OpPCMPEQW: "pcmpeqw", OpPCMPEQD: "pcmpeqd",
	OpEMMS: "emms", OpVZEROUPPER: "vzeroupper", OpVZEROALL: "vzeroall",
	OpCMPPS: "cmpps", OpCMPPD: "cmppd", OpCMPSS: "cmpss", OpCMPSD: "cmpsd",
	OpPINSRW: "pinsrw", OpPEXTRW: "pextrw",
	OpSHUFPS: "shufps", OpSHUFPD: "shufpd",
	OpADDSUBPD: "addsubpd", OpADDSUBPS: "addsubps",
	OpPSRLW: "psrlw", OpPSRLD: "psrld", OpPSRLQ: "psrlq",
	OpPADDQ: "paddq", OpPMULLW: "pmullw", OpPMOVMSKB: "pmovmskb",
	OpPSUBUSB: "psubusb", OpPSUBUSW: "psubusw", OpPMINUB: "pminub",
	OpPAND: "pand", OpPADDUSB: "paddusb", OpPADDUSW: "paddusw",
	OpPMAXUB: "pmaxub", OpPANDN: "pandn",
	OpPAVGB: "pavgb", OpPSRAW: "psraw", OpPSRAD: "psrad", OpPAVGW: "pavgw",
	OpPMULHUW: "pmulhuw", OpPMULHW: "pmulhw",
	OpCVTDQ2PD: "cvtdq2pd", OpCVTTPD2DQ: "cvttpd2dq", OpCVTPD2DQ: "cvtpd2dq",
	OpMOVNTQ: "movntq", OpMOVNTDQ: "movntdq",
	OpPSUBSB: "psubsb", OpPSUBSW: "psubsw", OpPMINSW: "pminsw",
	OpPOR: "por", OpPADDSB: "paddsb", OpPADDSW: "paddsw",
	OpPMAXSW: "pmaxsw", OpPXOR: "pxor", OpLDDQU: "lddqu",
	OpPSLLW: "psllw", OpPSLLD: "pslld", OpPSLLQ: "psllq",
	OpPMULUDQ: "pmuludq", OpPMADDWD: "pmaddwd", OpPSADBW: "psadbw",
	OpMASKMOVQ: "maskmovq", OpMASKMOVDQU: "maskmovdqu",
	OpPSUBB: "psubb", OpPSUBW: "psubw", OpPSUBD: "psubd", OpPSUBQ: "psubq",
	OpPADDB: "paddb", OpPADDW: "paddw", OpPADDD: "paddd",
	OpPSLLDQ: "pslldq", OpPSRLDQ: "psrldq",

	OpPSHUFB: "pshufb", OpPHADDW: "phaddw", OpPHADDD: "phaddd",
	OpPHADDSW: "phaddsw", OpPMADDUBSW: "pmaddubsw",
	OpPHSUBW: "phsubw", OpPHSUBD: "phsubd", OpPHSUBSW: "phsubsw",
	OpPSIGNB: "psignb", OpPSIGNW: "psignw", OpPSIGND: "psignd",
	OpPMULHRSW: "pmulhrsw",
	OpPABSB: "pabsb", OpPABSW: "pabsw", OpPABSD: "pabsd", OpPALIGNR: "palignr",
	OpPTEST: "ptest",
	OpPMOVSXBW: "pmovsxbw", OpPMOVSXBD: "pmovsxbd", OpPMOVSXBQ: "pmovsxbq",
	OpPMOVSXWD: "pmovsxwd", OpPMOVSXWQ: "pmovsxwq", OpPMOVSXDQ: "pmovsxdq",
	OpPMULDQ: "pmuldq", OpPCMPEQQ: "pcmpeqq", OpMOVNTDQA: "movntdqa",
	OpPACKUSDW: "packusdw",
	OpPMOVZXBW: "pmovzxbw", OpPMOVZXBD: "pmovzxbd", OpPMOVZXBQ: "pmovzxbq",
	OpPMOVZXWD: "pmovzxwd", OpPMOVZXWQ: "pmovzxwq", OpPMOVZXDQ: "pmovzxdq",
	OpPMINSB: "pminsb", OpPMINSD: "pminsd", OpPMINUW: "pminuw", OpPMINUD: "pminud",
	OpPMAXSB: "pmaxsb", OpPMAXSD: "pmaxsd", OpPMAXUW: "pmaxuw", OpPMAXUD: "pmaxud",
	OpPMULLD: "pmulld", OpPHMINPOSUW: "phminposuw",
	OpROUNDPS: "roundps", OpROUNDPD: "roundpd",
	OpROUNDSS: "roundss", OpROUNDSD: "roundsd",
	OpBLENDPS: "blendps", OpBLENDPD: "blendpd", OpPBLENDW: "pblendw",
	OpPEXTRB: "pextrb", OpPEXTRD: "pextrd", OpEXTRACTPS: "extractps",
	OpPINSRB: "pinsrb", OpINSERTPS: "insertps", OpPINSRD: "pinsrd",
	OpDPPS: "dpps", OpDPPD: "dppd", OpMPSADBW: "mpsadbw",
	OpPCMPGTQ: "pcmpgtq", OpCRC32: "crc32",
	OpPCMPESTRM: "pcmpestrm", OpPCMPESTRI: "pcmpestri",
	OpPCMPISTRM: "pcmpistrm", OpPCMPISTRI: "pcmpistri",
	OpAESIMC: "aesimc", OpAESENC: "aesenc", OpAESENCLAST: "aesenclast",
	OpAESDEC: "aesdec", OpAESDECLAST: "aesdeclast",
	OpAESKEYGENASSIST: "aeskeygenassist", OpPCLMULQDQ: "pclmulqdq",
	OpVFMADD132PS: "vfmadd132ps", OpVFMADD132PD: "vfmadd132pd",
	OpVFMADD213PS: "vfmadd213ps", OpVFMADD213PD: "vfmadd213pd",
	OpVFMADD231PS: "vfmadd231ps", OpVFMADD231PD: "vfmadd231pd",
	OpPBLENDVB: "pblendvb", OpBLENDVPS: "blendvps", OpBLENDVPD: "blendvpd",
	OpPEXTRQ: "pextrq", OpPINSRQ: "pinsrq",

	OpPI2FW: "pi2fw", OpPI2FD: "pi2fd", OpPF2IW: "pf2iw", OpPF2ID: "pf2id",
	OpPFNACC: "pfnacc", OpPFPNACC: "pfpnacc",
	OpPFCMPGE: "pfcmpge", OpPFMIN: "pfmin", OpPFRCP: "pfrcp",
	OpPFRSQRT: "pfrsqrt", OpPFSUB: "pfsub", OpPFADD: "pfadd",
	OpPFCMPGT: "pfcmpgt", OpPFMAX: "pfmax",
	OpPFRCPIT1: "pfrcpit1", OpPFRSQIT1: "pfrsqit1", OpPFACC: "pfacc",
	OpPFCMPEQ: "pfcmpeq", OpPFMUL: "pfmul", OpPFRCPIT2: "pfrcpit2",
	OpPMULHRW: "pmulhrw", OpPSWAPD: "pswapd", OpPAVGUSB: "pavgusb",
	OpPFSUBR: "pfsubr",

	OpFADD: "fadd", OpFMUL: "fmul", OpFCOM: "fcom", OpFCOMP: "fcomp",
	OpFSUB: "fsub", OpFSUBR: "fsubr", OpFDIV: "fdiv", OpFDIVR: "fdivr",
	OpFLD: "fld", OpFST: "fst", OpFSTP: "fstp",
	OpFLDENV: "fldenv", OpFLDCW: "fldcw",
	OpFNSTENV: "fnstenv", OpFNSTCW: "fnstcw",
	OpFIADD: "fiadd", OpFIMUL: "fimul", OpFICOM: "ficom", OpFICOMP: "ficomp",
	OpFISUB: "fisub", OpFISUBR: "fisubr", OpFIDIV: "fidiv", OpFIDIVR: "fidivr",
	OpFILD: "fild", OpFIST: "fist", OpFISTP: "fistp", OpFISTTP: "fisttp",
	OpFBLD: "fbld", OpFBSTP: "fbstp",
	OpFRSTOR: "frstor", OpFNSAVE: "fnsave", OpFNSTSW: "fnstsw",
	OpFCHS: "fchs", OpFABS: "fabs", OpFTST: "ftst", OpFXAM: "fxam",
	OpFLD1: "fld1", OpFLDL2T: "fldl2t", OpFLDL2E: "fldl2e", OpFLDPI: "fldpi",
	OpFLDLG2: "fldlg2", OpFLDLN2: "fldln2", OpFLDZ: "fldz",
	OpF2XM1: "f2xm1", OpFYL2X: "fyl2x", OpFPTAN: "fptan", OpFPATAN: "fpatan",
	OpFXTRACT: "fxtract", OpFPREM1: "fprem1",
	OpFDECSTP: "fdecstp", OpFINCSTP: "fincstp",
	OpFPREM: "fprem", OpFYL2XP1: "fyl2xp1", OpFSQRT: "fsqrt",
	OpFSINCOS: "fsincos", OpFRNDINT: "frndint", OpFSCALE: "fscale",
	OpFSIN: "fsin", OpFCOS: "fcos", OpFXCH: "fxch", OpFNOP: "fnop",
	OpFCMOVB: "fcmovb", OpFCMOVE: "fcmove", OpFCMOVBE: "fcmovbe",
	OpFCMOVU: "fcmovu", OpFCMOVNB: "fcmovnb", OpFCMOVNE: "fcmovne",
	OpFCMOVNBE: "fcmovnbe", OpFCMOVNU: "fcmovnu",
	OpFUCOMPP: "fucompp", OpFNCLEX: "fnclex", OpFNINIT: "fninit",
	OpFUCOMI: "fucomi", OpFCOMI: "fcomi",
	OpFFREE: "ffree", OpFUCOM: "fucom", OpFUCOMP: "fucomp",
	OpFADDP: "faddp", OpFMULP: "fmulp", OpFCOMPP: "fcompp",
	OpFSUBRP: "fsubrp", OpFSUBP: "fsubp",
	OpFDIVRP: "fdivrp", OpFDIVP: "fdivp",
	OpFUCOMIP: "fucomip", OpFCOMIP: "fcomip",
}

// String returns the lowercase mnemonic for the opcode.
func (op Opcode) String() string {
	if int(op) >= len(opcodeNames) || opcodeNames[op] == "" {
		return "undefined"
	}
	return opcodeNames[op]
}
